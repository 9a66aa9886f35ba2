package decorator

// NewThread returns a thread decorator where PID is set only if it differs
// from the ID.
func NewThread(ID, PID string) *Thread {
	realPID := ""
	if ID != PID {
		realPID = PID
	}
	return &Thread{ID: ID, PID: realPID}
}

// CheckThread returns a thread which has the ID set. If the thread doesn't
// have one, ID is used, e.g. the message ID of the first message.
func CheckThread(thread *Thread, ID string) *Thread {
	if thread == nil {
		return &Thread{ID: ID}
	}
	if thread.ID == "" {
		thread.ID = ID
	}
	return thread
}

// ThreadID returns the thread ID of thread or msgID if thread doesn't have it.
// The first message of the exchange starts the thread with its own @id.
func ThreadID(thread *Thread, msgID string) string {
	if thread == nil || thread.ID == "" {
		return msgID
	}
	return thread.ID
}
