/*
Package resilience provides a circuit breaker for outbound calls.

The contact webhook is the only remote dependency of the service; the
breaker keeps a failing receiver from tying up request goroutines for the
full retry budget on every submission.

	breaker := resilience.New("contact-webhook", resilience.Settings{
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts resilience.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	err := breaker.Execute(ctx, func(ctx context.Context) error {
		return post(ctx, payload)
	})

States:

	Closed --[failures]-> Open --[timeout]-> Half-Open --[successes]-> Closed
	                                           |
	                                       [failure]
	                                           v
	                                          Open
*/
package resilience
