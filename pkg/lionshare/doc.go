// Package lionshare splits the Silver Lions of a War Thunder battle across
// the vehicles that earned them, starting from the end-of-session report
// text the game shows.
//
// Quick start:
//
//	res, err := lionshare.Reconcile(report)
//	var verr *lionshare.ValidationError
//	switch {
//	case errors.As(err, &verr):
//	    log.Println("totals disagree:", verr) // res is still usable
//	case err != nil:
//	    log.Fatal(err) // not a battle report
//	}
//	for _, e := range res.Entries {
//	    fmt.Println(e.Name, e.Value)
//	}
//
// A Lionshare instance holds no per-report state and is safe for concurrent
// use.
package lionshare
