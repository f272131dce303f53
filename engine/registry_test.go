package engine

import (
	"slices"
	"testing"
)

// mockFactory is a test factory implementation
type mockFactory struct {
	name string
}

func (f *mockFactory) Create([]byte, uint32) (Context, Status, error) {
	return nil, StatusInvalidModule, nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	factory := &mockFactory{name: "mod"}

	registry.Register("mod", factory)

	got, ok := registry.Get("mod")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered factory")
	}

	if got != factory {
		t.Error("Registry.Get() returned different factory instance")
	}
}

func TestRegistry_GetNonExistent(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	_, ok := registry.Get("nonexistent")
	if ok {
		t.Error("Registry.Get() returned ok=true for non-existent format")
	}
}

func TestRegistry_MultipleFormats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	modFactory := &mockFactory{name: "mod"}
	s3mFactory := &mockFactory{name: "s3m"}
	xmFactory := &mockFactory{name: "xm"}

	registry.Register("mod", modFactory)
	registry.Register("s3m", s3mFactory)
	registry.Register("xm", xmFactory)

	tests := []struct {
		format string
		want   Factory
		wantOK bool
	}{
		{"mod", modFactory, true},
		{"s3m", s3mFactory, true},
		{"xm", xmFactory, true},
		{".mod", modFactory, true},
		{"MOD", modFactory, true},
		{".S3M", s3mFactory, true},
		{"it", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got, ok := registry.Get(tt.format)
			if ok != tt.wantOK {
				t.Errorf("Registry.Get(%q) ok = %v, want %v", tt.format, ok, tt.wantOK)
			}
			if tt.wantOK && got != tt.want {
				t.Errorf("Registry.Get(%q) returned wrong factory", tt.format)
			}
		})
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	factory1 := &mockFactory{name: "first"}
	factory2 := &mockFactory{name: "second"}

	registry.Register("mod", factory1)
	registry.Register(".MOD", factory2)

	got, ok := registry.Get("mod")
	if !ok {
		t.Fatal("Registry.Get() failed after overwrite")
	}

	if got != factory2 {
		t.Error("Registry.Get() did not return the overwritten factory")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	factory := &mockFactory{name: "test"}

	done := make(chan bool)
	for range 10 {
		go func() {
			registry.Register("format", factory)
			done <- true
		}()
	}

	for range 10 {
		go func() {
			_, _ = registry.Get("format")
			_ = registry.Formats()
			done <- true
		}()
	}

	for range 20 {
		<-done
	}

	got, ok := registry.Get("format")
	if !ok {
		t.Error("Registry.Get() failed after concurrent operations")
	}
	if got != factory {
		t.Error("Registry returned wrong factory after concurrent operations")
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("s3m", &mockFactory{})
	registry.Register(".MOD", &mockFactory{})

	want := []string{"mod", "s3m"}
	if got := registry.Formats(); !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	if registry == nil {
		t.Fatal("NewRegistry() returned nil")
	}

	if registry.factories == nil {
		t.Error("NewRegistry() did not initialize factories map")
	}

	if registry.mtx == nil {
		t.Error("NewRegistry() did not initialize mutex")
	}
}

// BenchmarkRegistry_Get benchmarks retrieving factories
func BenchmarkRegistry_Get(b *testing.B) {
	registry := NewRegistry()
	registry.Register("mod", &mockFactory{})

	b.ReportAllocs()

	for b.Loop() {
		_, _ = registry.Get(".MOD")
	}
}
