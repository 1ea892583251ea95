package observability

import (
	"errors"
	"testing"
	"time"
)

type recordingConvertHooks struct {
	starts    int
	completes int
	lastNodes int
	lastErr   error
}

func (r *recordingConvertHooks) OnConvertStart(int) { r.starts++ }

func (r *recordingConvertHooks) OnConvertComplete(nodes int, _ time.Duration, err error) {
	r.completes++
	r.lastNodes = nodes
	r.lastErr = err
}

type recordingBuildHooks struct {
	starts     int
	completes  int
	lastThunks int
}

func (r *recordingBuildHooks) OnBuildStart(int) { r.starts++ }

func (r *recordingBuildHooks) OnBuildComplete(_, thunks int, _ time.Duration, _ error) {
	r.completes++
	r.lastThunks = thunks
}

func TestDefaultHooksAreNoop(t *testing.T) {
	Reset()

	if _, ok := Convert().(NoopConvertHooks); !ok {
		t.Errorf("Convert() = %T, want NoopConvertHooks", Convert())
	}
	if _, ok := Build().(NoopBuildHooks); !ok {
		t.Errorf("Build() = %T, want NoopBuildHooks", Build())
	}

	// calling no-op hooks must be safe
	Convert().OnConvertStart(0)
	Convert().OnConvertComplete(0, 0, nil)
	Build().OnBuildStart(0)
	Build().OnBuildComplete(0, 0, 0, nil)
}

func TestSetConvertHooks(t *testing.T) {
	defer Reset()

	rec := &recordingConvertHooks{}
	SetConvertHooks(rec)

	Convert().OnConvertStart(2)
	Convert().OnConvertComplete(5, time.Millisecond, nil)

	if rec.starts != 1 || rec.completes != 1 {
		t.Errorf("starts, completes = %d, %d, want 1, 1", rec.starts, rec.completes)
	}
	if rec.lastNodes != 5 {
		t.Errorf("lastNodes = %d, want 5", rec.lastNodes)
	}
}

func TestSetBuildHooks(t *testing.T) {
	defer Reset()

	rec := &recordingBuildHooks{}
	SetBuildHooks(rec)

	Build().OnBuildStart(3)
	Build().OnBuildComplete(3, 1, time.Millisecond, nil)

	if rec.starts != 1 || rec.completes != 1 {
		t.Errorf("starts, completes = %d, %d, want 1, 1", rec.starts, rec.completes)
	}
	if rec.lastThunks != 1 {
		t.Errorf("lastThunks = %d, want 1", rec.lastThunks)
	}
}

func TestSetNilHooksIgnored(t *testing.T) {
	defer Reset()

	rec := &recordingConvertHooks{}
	SetConvertHooks(rec)
	SetConvertHooks(nil)

	Convert().OnConvertStart(0)
	if rec.starts != 1 {
		t.Errorf("starts = %d, want 1 (nil registration must not clear hooks)", rec.starts)
	}
}

func TestHooksReceiveErrors(t *testing.T) {
	defer Reset()

	rec := &recordingConvertHooks{}
	SetConvertHooks(rec)

	wantErr := errors.New("boom")
	Convert().OnConvertComplete(0, 0, wantErr)

	if !errors.Is(rec.lastErr, wantErr) {
		t.Errorf("lastErr = %v, want %v", rec.lastErr, wantErr)
	}
}

func TestReset(t *testing.T) {
	SetConvertHooks(&recordingConvertHooks{})
	SetBuildHooks(&recordingBuildHooks{})
	Reset()

	if _, ok := Convert().(NoopConvertHooks); !ok {
		t.Errorf("Convert() after Reset = %T, want NoopConvertHooks", Convert())
	}
	if _, ok := Build().(NoopBuildHooks); !ok {
		t.Errorf("Build() after Reset = %T, want NoopBuildHooks", Build())
	}
}
