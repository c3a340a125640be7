// Package verify checks generated URLs for liveness and drops the
// unreachable ones.
//
// # Verifier
//
//	client := http.NewClient(5*time.Second, "")
//	v := verify.NewVerifier(client, 10, func(e verify.ProgressEvent) {
//	    fmt.Println(e.Message)
//	})
//	live := v.Filter(ctx, candidates)
//
// # Concurrency
//
// At most threads probes run at once, bounded with an errgroup limit.
// Each probe writes only its own result slot, so the survivors come back
// in ascending index order no matter which probe finishes first.
//
// # Progress Tracking
//
// Progress is reported via a callback that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
//
// The per-URL "Checking: ..." lines are LevelVerbose. The callback may be
// invoked from several goroutines at once.
package verify
