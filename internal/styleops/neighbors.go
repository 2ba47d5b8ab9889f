package styleops

import "github.com/dmarsters/author-style-mcp/internal/stylespace"

// FindMaxContrastPair scans every unordered catalog pair with unweighted
// distance and returns the report for the farthest-apart pair. Ties keep the
// first pair found in catalog order.
func FindMaxContrastPair() (*DistanceReport, error) {
	ids := stylespace.AuthorIDs()

	var best *DistanceReport
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			report, err := ComputeDistance(ids[i], ids[j], false)
			if err != nil {
				return nil, err
			}
			if best == nil || report.EuclideanDistance > best.EuclideanDistance {
				best = report
			}
		}
	}
	return best, nil
}

// FindNearestNeighbor returns the unweighted distance report from the given
// author to its closest catalog neighbor, excluding itself. Ties keep the
// first candidate in catalog order.
func FindNearestNeighbor(id string) (*DistanceReport, error) {
	if _, err := stylespace.Lookup(id); err != nil {
		return nil, err
	}

	var best *DistanceReport
	for _, other := range stylespace.AuthorIDs() {
		if other == id {
			continue
		}
		report, err := ComputeDistance(id, other, false)
		if err != nil {
			return nil, err
		}
		if best == nil || report.EuclideanDistance < best.EuclideanDistance {
			best = report
		}
	}
	return best, nil
}
