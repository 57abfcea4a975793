// Package domain contains the core entities of tweet generation: the example
// posts a user supplies, the request describing one call to a hosted model,
// and the items recovered from the model's answer. It holds no I/O and is
// independent of any provider or delivery mechanism.
package domain
