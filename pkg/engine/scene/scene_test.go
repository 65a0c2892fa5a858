package scene

import "testing"

// recordingStream counts add/remove events for tests.
type recordingStream struct {
	added   []string
	removed []string
}

func (r *recordingStream) AddData(d *Data)    { r.added = append(r.added, d.Name()) }
func (r *recordingStream) RemoveData(d *Data) { r.removed = append(r.removed, d.Name()) }

func TestDataLifecycle(t *testing.T) {
	lib := NewLibrary()
	lib.Register("blip", []byte{1, 2, 3})
	rec := &recordingStream{}
	sc := NewScene(rec)

	d, err := NewData("blip", sc, lib)
	if err != nil {
		t.Fatalf("NewData: %v", err)
	}
	if len(rec.added) != 1 || rec.added[0] != "blip" {
		t.Errorf("stream adds = %v, want [blip]", rec.added)
	}
	if d.Dead() {
		t.Error("new data reports dead")
	}
	if got := d.Payload(); len(got) != 3 {
		t.Errorf("payload length = %d, want 3", len(got))
	}

	d.MarkDead()
	d.MarkDead() // idempotent
	if len(rec.removed) != 1 {
		t.Errorf("stream removes = %v, want exactly one", rec.removed)
	}
	if !d.Dead() {
		t.Error("data not dead after MarkDead")
	}
}

func TestNewDataUnknownAsset(t *testing.T) {
	lib := NewLibrary()
	if _, err := NewData("missing", nil, lib); err == nil {
		t.Error("NewData with unregistered asset returned nil error")
	}
}

func TestStreamTracksLiveData(t *testing.T) {
	lib := NewLibrary()
	lib.Register("font", []byte{1})
	lib.Register("blip", []byte{2})
	stream := NewStream()
	sc := NewScene(stream)

	font, err := NewData("font", sc, lib)
	if err != nil {
		t.Fatalf("NewData: %v", err)
	}
	if _, err := NewData("blip", sc, lib); err != nil {
		t.Fatalf("NewData: %v", err)
	}

	live := stream.Live()
	if len(live) != 2 || live[0] != "blip" || live[1] != "font" {
		t.Errorf("Live = %v, want [blip font]", live)
	}

	font.MarkDead()
	live = stream.Live()
	if len(live) != 1 || live[0] != "blip" {
		t.Errorf("Live after MarkDead = %v, want [blip]", live)
	}
}

func TestSceneWithoutRecorder(t *testing.T) {
	lib := NewLibrary()
	lib.Register("font", nil)
	sc := NewScene(nil)
	d, err := NewData("font", sc, lib)
	if err != nil {
		t.Fatalf("NewData: %v", err)
	}
	d.MarkDead() // must not panic without a recorder
}
