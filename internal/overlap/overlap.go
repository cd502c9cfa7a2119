// Package overlap detects declared VRAM regions that share addresses.
package overlap

import (
	"github.com/retroenv/retrogolib/set"
	"github.com/retroenv/vramcheck/internal/model"
)

// Overlap is a pair of regions and the address range they share.
type Overlap struct {
	First  model.Region
	Second model.Region
	Range  model.Interval
}

// Detect compares all pairs of regions and returns every overlapping pair in
// declaration order. Regions declared more than once with the same name,
// range and location are compared only once.
func Detect(regions []model.Region) []Overlap {
	type key struct {
		name     string
		interval model.Interval
		location model.Location
	}
	seen := set.New[key]()

	unique := make([]model.Region, 0, len(regions))
	for _, region := range regions {
		k := key{name: region.Name, interval: region.Interval, location: region.Location}
		if seen.Contains(k) {
			continue
		}
		seen.Add(k)
		unique = append(unique, region)
	}

	var result []Overlap
	for i := range unique {
		for j := i + 1; j < len(unique); j++ {
			rng, ok := model.OverlapRange(unique[i], unique[j])
			if !ok {
				continue
			}
			result = append(result, Overlap{
				First:  unique[i],
				Second: unique[j],
				Range:  rng,
			})
		}
	}
	return result
}
