package clip

import "sync"

// Memory is an in-process Buffer. It is safe for concurrent use so tests can
// change its contents while a watcher polls it. Selected by name it starts
// empty, so every Read reports ErrNoText until something writes to it.
type Memory struct {
	mu       sync.Mutex
	text     string
	readErr  error
	writeErr error
	reads    int
	writes   int
}

// NewMemory returns a Memory buffer holding text.
func NewMemory(text string) *Memory {
	return &Memory{text: text}
}

func (m *Memory) Name() string { return "memory" }

// Read returns the stored text, the injected read error, or ErrNoText when
// the buffer is empty.
func (m *Memory) Read() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads++
	if m.readErr != nil {
		return "", m.readErr
	}
	if m.text == "" {
		return "", ErrNoText
	}
	return m.text, nil
}

// Write stores text unless a write error has been injected, in which case
// the contents are left unchanged.
func (m *Memory) Write(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	m.text = text
	m.writes++
	return nil
}

func (m *Memory) Close() {}

// Set replaces the contents as an outside program would. It does not count
// as a write.
func (m *Memory) Set(text string) {
	m.mu.Lock()
	m.text = text
	m.mu.Unlock()
}

// Text returns the current contents.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// FailReads makes every Read return err. Pass nil to recover.
func (m *Memory) FailReads(err error) {
	m.mu.Lock()
	m.readErr = err
	m.mu.Unlock()
}

// FailWrites makes every Write return err. Pass nil to recover.
func (m *Memory) FailWrites(err error) {
	m.mu.Lock()
	m.writeErr = err
	m.mu.Unlock()
}

// Writes returns how many successful writes were made.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
