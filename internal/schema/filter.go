package schema

// Filter is one entry of the user-supplied, ordered replication filter
// list CO's build step walks (§4.3 step 4): which owner/table pairs to
// materialize into DS, which columns form the primary key, and the
// per-table options CO attaches to the resulting Table.
type Filter struct {
	OwnerPattern string // Oracle LIKE-style pattern: '%' any run, '_' any one char
	TablePattern string
	PKColumns    map[int16]bool
	PKNames      string // comma-joined PK column names, for diagnostics
	Options      FilterOptions
}

// FilterOptions are the per-filter-entry overrides CO folds into a built
// Table's SupplementalLogOptions and other knobs.
type FilterOptions struct {
	SupplementalAll bool
}

// FilterList is the configured, ordered set of replication filters. Two
// filter entries matching the same object produce one Table; later
// entries win on conflicting options (§4.3: "tie-break is filter-list
// order").
type FilterList []Filter

// Matches reports whether owner.table is accepted by any entry in fl,
// returning the index of the *last* matching entry (so later-wins
// semantics fall out of a simple linear scan).
func (fl FilterList) Matches(owner, table string) (int, bool) {
	idx := -1
	for i, f := range fl {
		if likeMatch(f.OwnerPattern, owner) && likeMatch(f.TablePattern, table) {
			idx = i
		}
	}
	return idx, idx >= 0
}

// likeMatch implements Oracle LIKE-style matching: '%' matches any run of
// characters (including none), '_' matches exactly one character. Pattern
// matching is case-sensitive, matching the owner/table names as stored in
// OBJ$ (already normalized by the source database).
func likeMatch(pattern, s string) bool {
	return likeMatchBytes([]byte(pattern), []byte(s))
}

func likeMatchBytes(pattern, s []byte) bool {
	if len(pattern) == 0 {
		return len(s) == 0
	}
	switch pattern[0] {
	case '%':
		if likeMatchBytes(pattern[1:], s) {
			return true
		}
		for i := 0; i < len(s); i++ {
			if likeMatchBytes(pattern[1:], s[i+1:]) {
				return true
			}
		}
		return false
	case '_':
		if len(s) == 0 {
			return false
		}
		return likeMatchBytes(pattern[1:], s[1:])
	default:
		if len(s) == 0 || s[0] != pattern[0] {
			return false
		}
		return likeMatchBytes(pattern[1:], s[1:])
	}
}
