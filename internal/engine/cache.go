package engine

// Cache - memo of position scores. Entries never expire: a position's score
// depends on nothing but the position.
type Cache interface {
	Get(key Key) (Score, bool)
	Set(key Key, score Score)
	Len() int
}

// MemoryCache - map backed Cache. It is not safe for concurrent use.
type MemoryCache struct {
	scores map[Key]Score
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		scores: make(map[Key]Score),
	}
}

func (that *MemoryCache) Get(key Key) (Score, bool) {
	score, ok := that.scores[key]
	return score, ok
}

func (that *MemoryCache) Set(key Key, score Score) {
	that.scores[key] = score
}

func (that *MemoryCache) Len() int {
	return len(that.scores)
}
