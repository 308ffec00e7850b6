package schema

// ShortHashLen is the number of hash characters shown in listings.
const ShortHashLen = 7

// ShortHash abbreviates a commit hash for display.
// Hashes shorter than ShortHashLen are returned unchanged.
func ShortHash(hash string) string {
	if len(hash) <= ShortHashLen {
		return hash
	}
	return hash[:ShortHashLen]
}

// ClampRating forces a rating into [MinRating, MaxRating].
func ClampRating(r int) int {
	return max(MinRating, min(r, MaxRating))
}
