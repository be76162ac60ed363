package porous

import (
	"testing"
)

func BenchmarkDelanyBazleyEvaluate(b *testing.B) {
	model := DelanyBazley{
		Air:             testAir(b),
		FlowResistivity: 25000,
	}
	freqs := DefaultSweep()

	b.ResetTimer()

	for b.Loop() {
		if _, err := model.Evaluate(freqs); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBiotAllardEvaluate(b *testing.B) {
	model := BiotAllard{
		Air:      testAir(b),
		Material: biotAllardMaterial(),
	}
	freqs := DefaultSweep()

	b.ResetTimer()

	for b.Loop() {
		if _, err := model.Evaluate(freqs); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkJohnsonChampouxEvaluate(b *testing.B) {
	model := JohnsonChampoux{
		Air:      testAir(b),
		Material: scenarioMaterial(),
	}
	freqs := DefaultSweep()

	b.ResetTimer()

	for b.Loop() {
		if _, err := model.Evaluate(freqs); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAbsorption(b *testing.B) {
	model := JohnsonChampoux{
		Air:      testAir(b),
		Material: scenarioMaterial(),
	}
	freqs := DefaultSweep()
	resp, err := model.Evaluate(freqs)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()

	for b.Loop() {
		if _, err := resp.Absorption(0.05, model.Air.Impedance); err != nil {
			b.Fatal(err)
		}
	}
}
