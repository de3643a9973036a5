package noise

import "testing"

func TestGradientDeterministic(t *testing.T) {
	a := New(99)
	b := New(99)

	for i := 0; i < 50; i++ {
		x := float64(i) * 0.13
		y := float64(i) * 0.07
		if va, vb := a.Sample(x, y), b.Sample(x, y); va != vb {
			t.Fatalf("gradient fields with equal seeds diverged at (%0.2f,%0.2f): %f vs %f", x, y, va, vb)
		}
	}
}

func TestGradientSeedChangesField(t *testing.T) {
	a := New(1)
	b := New(2)

	same := true
	for i := 0; i < 20; i++ {
		x := float64(i) * 0.31
		if a.Sample(x, x) != b.Sample(x, x) {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds should produce different fields")
	}
}

func TestGradientRange(t *testing.T) {
	f := New(7, WithOctaves(4))
	for i := 0; i < 200; i++ {
		v := f.Sample(float64(i)*0.17, float64(i)*0.29)
		if v < 0 || v > 1 {
			t.Fatalf("sample %d out of [0,1]: %f", i, v)
		}
	}
}

func TestFallbackDeterministicAndBounded(t *testing.T) {
	a := New(42, WithFallbackOnly())
	b := New(42, WithFallbackOnly())

	for i := 0; i < 100; i++ {
		x := float64(i) * 0.05
		y := float64(100-i) * 0.05
		va, vb := a.Sample(x, y), b.Sample(x, y)
		if va != vb {
			t.Fatalf("fallback fields with equal seeds diverged: %f vs %f", va, vb)
		}
		if va < 0 || va > 1 {
			t.Fatalf("fallback sample out of [0,1]: %f", va)
		}
	}
}

func TestFallbackVariesAcrossCoordinates(t *testing.T) {
	f := New(42, WithFallbackOnly())

	v0 := f.Sample(0, 0)
	varied := false
	for i := 1; i < 20; i++ {
		if f.Sample(float64(i), float64(i)) != v0 {
			varied = true
			break
		}
	}
	if !varied {
		t.Fatal("fallback field should vary across coordinates")
	}
}

func TestSimplexDeterministicAndBounded(t *testing.T) {
	a := New(17, WithSimplex())
	b := New(17, WithSimplex())

	for i := 0; i < 100; i++ {
		x := float64(i) * 0.11
		y := float64(i) * 0.19
		va, vb := a.Sample(x, y), b.Sample(x, y)
		if va != vb {
			t.Fatalf("simplex fields with equal seeds diverged: %f vs %f", va, vb)
		}
		if va < 0 || va > 1 {
			t.Fatalf("simplex sample out of [0,1]: %f", va)
		}
	}
}

func TestFallbackOnlySelectsFallback(t *testing.T) {
	if _, ok := New(1, WithFallbackOnly()).(*fallbackField); !ok {
		t.Fatal("WithFallbackOnly should select the fallback strategy")
	}
	if _, ok := New(1).(*gradientField); !ok {
		t.Fatal("default construction should select the gradient strategy")
	}
	if _, ok := New(1, WithSimplex()).(*simplexField); !ok {
		t.Fatal("WithSimplex should select the simplex strategy")
	}
	if _, ok := New(1, WithSimplex(), WithFallbackOnly()).(*fallbackField); !ok {
		t.Fatal("WithFallbackOnly should win over WithSimplex")
	}
}
