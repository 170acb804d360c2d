package job

import (
	"fmt"
	"strconv"
	"testing"
)

func TestShardLabelStableAndBounded(t *testing.T) {
	t.Parallel()
	keys := []string{"", "habits/u1", "goals/u1", "foodlog/u1", "mealplan/a-very-long-user-id"}
	for _, key := range keys {
		label := ShardLabel(key)
		if again := ShardLabel(key); again != label {
			t.Fatalf("ShardLabel(%q) unstable: %s then %s", key, label, again)
		}
		n, err := strconv.Atoi(label)
		if err != nil || n < 0 || n > 31 {
			t.Fatalf("ShardLabel(%q) = %q, want integer in [0,31]", key, label)
		}
	}
}

// The label must stay low-cardinality no matter how many users sync.
func TestShardLabelCardinality(t *testing.T) {
	t.Parallel()
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		seen[ShardLabel(fmt.Sprintf("habits/u%d", i))] = true
	}
	if len(seen) > 32 {
		t.Fatalf("%d distinct labels, want at most 32", len(seen))
	}
}
