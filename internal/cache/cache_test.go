package cache

import (
	"bytes"
	"testing"
	"time"
)

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()

	if err := m.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err := m.Get("k")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !bytes.Equal(got, []byte("v")) {
		t.Errorf("Get() = %q, want %q", got, "v")
	}
}

func TestMemoryMissIsNilNil(t *testing.T) {
	m := NewMemory()
	got, err := m.Get("absent")
	if err != nil || got != nil {
		t.Errorf("Get(absent) = (%v, %v), want (nil, nil)", got, err)
	}
}

func TestMemoryExpiry(t *testing.T) {
	m := NewMemory()
	m.Set("k", []byte("v"), 5*time.Millisecond)

	time.Sleep(20 * time.Millisecond)

	got, err := m.Get("k")
	if err != nil || got != nil {
		t.Errorf("Get(expired) = (%v, %v), want (nil, nil)", got, err)
	}
}

func TestMemoryOverwrite(t *testing.T) {
	m := NewMemory()
	m.Set("k", []byte("old"), time.Minute)
	m.Set("k", []byte("new"), time.Minute)

	got, _ := m.Get("k")
	if !bytes.Equal(got, []byte("new")) {
		t.Errorf("Get() = %q, want %q", got, "new")
	}
}

func TestMemoryDelete(t *testing.T) {
	m := NewMemory()
	m.Set("k", []byte("v"), time.Minute)
	if err := m.Delete("k"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if got, _ := m.Get("k"); got != nil {
		t.Errorf("Get(deleted) = %q, want nil", got)
	}
	if err := m.Delete("absent"); err != nil {
		t.Errorf("Delete(absent) error = %v, want nil", err)
	}
}

func TestMemoryZeroTTLNeverExpires(t *testing.T) {
	m := NewMemory()
	m.Set("k", []byte("v"), 0)

	time.Sleep(5 * time.Millisecond)

	if got, _ := m.Get("k"); got == nil {
		t.Error("zero-TTL entry expired")
	}
}
