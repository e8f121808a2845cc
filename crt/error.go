package crt

// OutOfMemory - Custom error to inform that a slot array could not be allocated, either because the requested
// capacity overflows or because the runtime refused the allocation. The table is left as it was.
type OutOfMemory struct {
	msg string
}

// NewOutOfMemory - Returns an OutOfMemory error carrying msg
func NewOutOfMemory(msg string) OutOfMemory {
	return OutOfMemory{msg: msg}
}

// Error - Used to notify that memory could not be allocated
func (O OutOfMemory) Error() string {
	if O.msg == "" {
		return "out of memory"
	}
	return O.msg
}

// Is - Matches any OutOfMemory regardless of message
func (O OutOfMemory) Is(target error) bool {
	_, ok := target.(OutOfMemory)
	return ok
}

// InvalidArgument - Custom error to inform that a caller broke the contract of an operation,
// such as passing a nil value to Set or an unusable configuration to NewWithConf
type InvalidArgument struct {
	msg string
}

// NewInvalidArgument - Returns an InvalidArgument error carrying msg
func NewInvalidArgument(msg string) InvalidArgument {
	return InvalidArgument{msg: msg}
}

// Error - Used to notify that an argument was invalid
func (I InvalidArgument) Error() string {
	if I.msg == "" {
		return "invalid argument"
	}
	return I.msg
}

// Is - Matches any InvalidArgument regardless of message
func (I InvalidArgument) Is(target error) bool {
	_, ok := target.(InvalidArgument)
	return ok
}

// ConcurrentModification - Custom error to inform that a table was changed while an iterator was walking it
type ConcurrentModification struct {
	msg string
}

// NewConcurrentModification - Returns a ConcurrentModification error carrying msg
func NewConcurrentModification(msg string) ConcurrentModification {
	return ConcurrentModification{msg: msg}
}

// Error - Used to notify that the table was modified during iteration
func (C ConcurrentModification) Error() string {
	if C.msg == "" {
		return "table modified during iteration"
	}
	return C.msg
}

// Is - Matches any ConcurrentModification regardless of message
func (C ConcurrentModification) Is(target error) bool {
	_, ok := target.(ConcurrentModification)
	return ok
}

// TableDestroyed - Custom error to inform that an operation was attempted on a destroyed table
type TableDestroyed struct {
	msg string
}

// NewTableDestroyed - Returns a TableDestroyed error carrying msg
func NewTableDestroyed(msg string) TableDestroyed {
	return TableDestroyed{msg: msg}
}

// Error - Used to notify that the table has been destroyed
func (T TableDestroyed) Error() string {
	if T.msg == "" {
		return "table destroyed"
	}
	return T.msg
}

// Is - Matches any TableDestroyed regardless of message
func (T TableDestroyed) Is(target error) bool {
	_, ok := target.(TableDestroyed)
	return ok
}

// ProbingAlgorithm - Custom error to inform that something went wrong concerning a probing algorithm
type ProbingAlgorithm struct {
	msg string
}

// NewProbingAlgorithm - Returns a ProbingAlgorithm error carrying msg
func NewProbingAlgorithm(msg string) ProbingAlgorithm {
	return ProbingAlgorithm{msg: msg}
}

// Error - Used to notify that the probing algorithm misbehaved
func (P ProbingAlgorithm) Error() string {
	if P.msg == "" {
		return "probing algorithm exhausted"
	}
	return P.msg
}

// Is - Matches any ProbingAlgorithm regardless of message
func (P ProbingAlgorithm) Is(target error) bool {
	_, ok := target.(ProbingAlgorithm)
	return ok
}
