// Package deck 塔罗牌目录与洗牌逻辑
package deck

import (
	"math/rand"
)

// Suit 牌组花色
type Suit string

const (
	SuitWands     Suit = "Wands"
	SuitCups      Suit = "Cups"
	SuitSwords    Suit = "Swords"
	SuitPentacles Suit = "Pentacles"
	SuitMajor     Suit = "Major Arcana"
)

// Size 完整塔罗牌目录的固定张数
const Size = 78

// Card 单张塔罗牌，目录构建后不可变
type Card struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Suit        Suit   `json:"suit"`
	Value       string `json:"value"` // 大阿尔卡纳 0-21，小阿尔卡纳 1-10 或 Page/Knight/Queen/King
	Meaning     string `json:"meaning"`
	Description string `json:"description"`
	ImageSeed   string `json:"image_seed"`
}

// RNG 抽象随机数生成，便于测试时注入确定性实现
type RNG interface {
	// Intn 返回 [0, n) 区间内的随机整数
	Intn(n int) int
	// Float64 返回 [0.0, 1.0) 区间内的随机浮点数
	Float64() float64
}

// mathRNG 默认实现，基于 math/rand 的全局源（并发安全、自动播种）
type mathRNG struct{}

func (mathRNG) Intn(n int) int   { return rand.Intn(n) }
func (mathRNG) Float64() float64 { return rand.Float64() }

// NewRNG 返回默认的随机数生成器
func NewRNG() RNG {
	return mathRNG{}
}

// Catalog 返回完整目录的副本，调用方可以自由持有和修改
func Catalog() []Card {
	cards := make([]Card, len(catalog))
	copy(cards, catalog)
	return cards
}

// ByID 根据卡牌 ID 查找目录中的卡牌
func ByID(id string) (Card, bool) {
	for _, c := range catalog {
		if c.ID == id {
			return c, true
		}
	}
	return Card{}, false
}

// Shuffle 对卡牌做均匀随机排列，返回新切片，不修改入参
// 使用从末尾开始交换的 Fisher-Yates 算法，保证排列均匀
// （随机比较器排序的洗牌方式有偏，不可使用）
func Shuffle(cards []Card, rng RNG) []Card {
	shuffled := make([]Card, len(cards))
	copy(shuffled, cards)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
