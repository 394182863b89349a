package buffer

import "os"

// Save writes the buffer to its backing: a no-op for BackingNone, or a
// truncating write of the full rope contents for BackingFile.
func (b *Buffer) Save() error {
	b.mu.RLock()
	backing := b.Backing
	text := b.text.String()
	b.mu.RUnlock()

	if backing.Kind == BackingNone {
		return nil
	}
	return os.WriteFile(backing.Path, []byte(text), 0o644)
}

// Rebind changes the buffer's backing (used by `write <path>` when a path is
// given) without saving.
func (b *Buffer) Rebind(path string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Backing = Backing{Kind: BackingFile, Path: path}
	if b.Name == ScratchName {
		b.Name = path
	}
}

// Open reads path and returns a buffer named path, backed by it.
func Open(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromText(path, string(data), Backing{Kind: BackingFile, Path: path}), nil
}
