package deck_test

import (
	"math/rand"
	"testing"

	"luna/pkg/deck"
)

// zeroRNG 确定性随机源，Intn 恒返回 0
type zeroRNG struct{}

func (zeroRNG) Intn(n int) int   { return 0 }
func (zeroRNG) Float64() float64 { return 0 }

func TestCatalog_Size(t *testing.T) {
	cards := deck.Catalog()
	if len(cards) != deck.Size {
		t.Fatalf("expected %d cards, got %d", deck.Size, len(cards))
	}
}

func TestCatalog_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range deck.Catalog() {
		if seen[c.ID] {
			t.Errorf("duplicate card ID: %s", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestCatalog_SuitDistribution(t *testing.T) {
	counts := make(map[deck.Suit]int)
	for _, c := range deck.Catalog() {
		counts[c.Suit]++
	}

	if counts[deck.SuitMajor] != 22 {
		t.Errorf("expected 22 major arcana, got %d", counts[deck.SuitMajor])
	}
	for _, suit := range []deck.Suit{deck.SuitWands, deck.SuitCups, deck.SuitSwords, deck.SuitPentacles} {
		if counts[suit] != 14 {
			t.Errorf("suit %s: expected 14 cards, got %d", suit, counts[suit])
		}
	}
}

func TestCatalog_TheFool(t *testing.T) {
	card, ok := deck.ByID("0")
	if !ok {
		t.Fatal("card 0 not found")
	}
	if card.Name != "The Fool" {
		t.Errorf("expected The Fool, got %s", card.Name)
	}
	if card.Value != "0" {
		t.Errorf("expected value 0, got %s", card.Value)
	}
}

func TestCatalog_ReturnsCopy(t *testing.T) {
	cards := deck.Catalog()
	cards[0].Name = "Tampered"

	fresh := deck.Catalog()
	if fresh[0].Name == "Tampered" {
		t.Fatal("catalog was mutated through the returned slice")
	}
}

func TestShuffle_Permutation(t *testing.T) {
	original := deck.Catalog()
	shuffled := deck.Shuffle(original, zeroRNG{})

	if len(shuffled) != len(original) {
		t.Fatalf("expected %d cards after shuffle, got %d", len(original), len(shuffled))
	}

	// 洗牌前后的卡牌集合必须一致
	before := make(map[string]int)
	after := make(map[string]int)
	for i := range original {
		before[original[i].ID]++
		after[shuffled[i].ID]++
	}
	for id, n := range before {
		if after[id] != n {
			t.Errorf("card %s: expected count %d after shuffle, got %d", id, n, after[id])
		}
	}
}

func TestShuffle_DoesNotMutateInput(t *testing.T) {
	original := deck.Catalog()
	firstID := original[0].ID

	deck.Shuffle(original, deck.NewRNG())

	if original[0].ID != firstID {
		t.Fatal("shuffle mutated its input slice")
	}
}

// TestShuffle_Uniformity 统计性检查：多次洗牌后某张牌的平均落点
// 应接近牌堆中点，偏差过大说明排列不均匀
func TestShuffle_Uniformity(t *testing.T) {
	const trials = 10000
	catalog := deck.Catalog()
	rng := rand.New(rand.NewSource(42))

	sum := 0
	for i := 0; i < trials; i++ {
		shuffled := deck.Shuffle(catalog, seededRNG{rng})
		for pos, c := range shuffled {
			if c.ID == "0" {
				sum += pos
				break
			}
		}
	}

	mean := float64(sum) / trials
	expected := float64(deck.Size-1) / 2 // 38.5

	if mean < expected-2 || mean > expected+2 {
		t.Errorf("mean position %.2f too far from expected %.2f", mean, expected)
	}
}

// seededRNG 包装 *rand.Rand 以实现 deck.RNG
type seededRNG struct{ r *rand.Rand }

func (s seededRNG) Intn(n int) int   { return s.r.Intn(n) }
func (s seededRNG) Float64() float64 { return s.r.Float64() }
