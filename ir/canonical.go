package ir

// rank orders tag names for canonical emission. Tags of equal rank keep
// their relative order.
func rank(name string) int {
	switch name {
	case "id":
		return 0
	case "name":
		return 1
	case "def":
		return 2
	case "is_a", "relationship":
		return 4
	case "is_obsolete", "comment":
		return 5
	}
	return 3
}

// CanonicalTags returns tags in canonical order: id, name, def, then the
// remaining tags in encounter order, then is_a and relationship tags, then
// is_obsolete and comment. The input is not modified.
func CanonicalTags(tags []Tag) []Tag {
	res := make([]Tag, 0, len(tags))
	for r := 0; r <= 5; r++ {
		for i := range tags {
			if rank(tags[i].Name) == r {
				res = append(res, tags[i])
			}
		}
	}
	return res
}
