// Package scene provides the minimal asset-lifecycle plumbing the client
// runtime needs: a locked asset registry and data objects whose create/die
// events are mirrored onto a scene's snapshot stream.
package scene

import (
	"fmt"
	"sync"
)

// Recorder receives asset lifecycle events for a scene. Snapshot/replay
// streams implement this to keep remote or recorded scenes in sync.
type Recorder interface {
	AddData(d *Data)
	RemoveData(d *Data)
}

// Library is a name-keyed registry of raw asset payloads (font files, PCM
// cues, and similar). Lookups are safe from any goroutine.
type Library struct {
	mu     sync.Mutex
	assets map[string][]byte
}

// NewLibrary returns an empty library.
func NewLibrary() *Library {
	return &Library{assets: make(map[string][]byte)}
}

// Register stores payload under name, replacing any previous entry.
func (l *Library) Register(name string, payload []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.assets[name] = payload
}

// Payload returns the payload registered under name.
func (l *Library) Payload(name string) ([]byte, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	p, ok := l.assets[name]
	return p, ok
}

// Scene is a container that data objects attach to. A scene may carry a
// recorder; scenes without one (e.g. UI-only scenes) skip stream mirroring.
type Scene struct {
	recorder Recorder
}

// NewScene creates a scene. recorder may be nil.
func NewScene(recorder Recorder) *Scene {
	return &Scene{recorder: recorder}
}

// Recorder returns the scene's stream, or nil.
func (s *Scene) Recorder() Recorder { return s.recorder }

// Data is a named asset bound to a scene. Creating one announces it on the
// scene's stream; MarkDead retracts it exactly once.
type Data struct {
	name    string
	scene   *Scene
	payload []byte
	dead    bool
}

// NewData resolves name in lib and attaches the result to sc (which may be
// nil for sceneless assets).
func NewData(name string, sc *Scene, lib *Library) (*Data, error) {
	payload, ok := lib.Payload(name)
	if !ok {
		return nil, fmt.Errorf("scene: unknown asset %q", name)
	}
	d := &Data{name: name, scene: sc, payload: payload}
	if sc != nil && sc.recorder != nil {
		sc.recorder.AddData(d)
	}
	return d, nil
}

// Name returns the asset name.
func (d *Data) Name() string { return d.name }

// Payload returns the raw asset bytes.
func (d *Data) Payload() []byte { return d.payload }

// Dead reports whether MarkDead has run.
func (d *Data) Dead() bool { return d.dead }

// MarkDead detaches the asset from its scene's stream. Idempotent.
func (d *Data) MarkDead() {
	if d.dead {
		return
	}
	if d.scene != nil && d.scene.recorder != nil {
		d.scene.recorder.RemoveData(d)
	}
	d.dead = true
}
