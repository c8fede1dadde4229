package chainsync

const (
	// DefaultQueueCapacity bounds the hand-off queue between the node
	// session and the backend consumer.
	DefaultQueueCapacity = 50

	// DefaultResumePointLimit caps how many recent points the resolver is
	// asked for.
	DefaultResumePointLimit = 10
)
