// Package golfgenius provides a client for the GolfGenius API v2.
//
// GolfGenius runs club competitions: a season contains events, an event is
// played over rounds, and each round hosts one or more tournaments whose
// results carry every player's gross score. This package implements the
// read-only subset of the API needed to walk that hierarchy.
//
// # Usage
//
// The API key is part of the request path, so it must never be logged:
//
//	logger := zerolog.New(os.Stderr)
//	client, err := golfgenius.NewClient(
//		golfgenius.DefaultBaseURL,
//		os.Getenv("GOLFGENIUS_API_KEY"),
//		logger,
//		golfgenius.WithTimeout(30*time.Second),
//		golfgenius.WithRequestDelay(300*time.Millisecond),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	seasons, err := client.GetSeasons(ctx)
//
// # Throttling
//
// Calls are serialized through a rate limiter so that consecutive requests
// start at least the configured delay apart. The spacing is measured
// start-to-start: a response slower than the delay is followed by the next
// request with no extra pause. The first request is never delayed. There are
// no retries; callers decide whether a failure is fatal.
//
// # Response shapes
//
// The service is inconsistent about wrapping. The same resource may come
// back as a list of {"season": {...}} objects, as {"seasons": [...]}, as a
// single {"season": {...}} or as the bare object. All list methods accept
// every shape.
//
// # Error Handling
//
//   - ErrMissingAPIKey: no key was configured (returned by NewClient)
//   - APIError: non-2xx response; matches ErrUnauthorized or ErrNotFound via errors.Is
//   - RequestError: transport failure, including timeouts
package golfgenius
