package trade

import (
	"sort"

	"github.com/google/uuid"
)

// FarmerGroup is the slice of cart lines belonging to one farmer
type FarmerGroup struct {
	FarmerID uuid.UUID
	Lines    []CartLine
}

// PartitionByFarmer splits cart lines into one group per farmer.
// Groups are ordered by farmer ID and lines keep their input order, so
// the same cart always yields the same partition.
func PartitionByFarmer(lines []CartLine) []FarmerGroup {
	byFarmer := make(map[uuid.UUID][]CartLine)
	for _, line := range lines {
		byFarmer[line.FarmerID] = append(byFarmer[line.FarmerID], line)
	}

	groups := make([]FarmerGroup, 0, len(byFarmer))
	for farmerID, farmerLines := range byFarmer {
		groups = append(groups, FarmerGroup{FarmerID: farmerID, Lines: farmerLines})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].FarmerID.String() < groups[j].FarmerID.String()
	})
	return groups
}
