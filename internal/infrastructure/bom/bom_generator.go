package bom

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"boatworks/internal/domain/entities"
	"boatworks/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrNoConfigurationSnapshot = errors.New("project has no configuration snapshot to expand")

const defaultCostRatio = 0.6

// Generator expands the latest configuration snapshot into a BOM snapshot:
// each included item becomes a purchasable/produceable line with an estimated
// cost derived from its sell price.
//
// Supported env vars:
//   - BOM_COST_RATIO: estimated cost as a fraction of the unit sell price
//     (default: 0.6)
type Generator struct {
	costRatio float64
}

var _ interfaces.IBOMGenerator = (*Generator)(nil)

func NewGenerator() *Generator {
	ratio := defaultCostRatio
	if v := os.Getenv("BOM_COST_RATIO"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || parsed <= 0 || parsed > 1 {
			log.Printf("[bom][generator] ignoring invalid BOM_COST_RATIO=%q", v)
		} else {
			ratio = parsed
		}
	}
	return &Generator{costRatio: ratio}
}

// GenerateBOM is a pure function of the project's latest configuration
// snapshot plus the cost ratio. It never mutates the aggregate; the caller
// appends the returned snapshot. Numbering continues from the snapshots
// already on the project, so repeated calls stay sequential.
func (g *Generator) GenerateBOM(ctx context.Context, p entities.Project, trigger entities.SnapshotTrigger) (entities.BOMSnapshot, error) {
	src := p.LatestConfigurationSnapshot()
	if src == nil {
		return entities.BOMSnapshot{}, ErrNoConfigurationSnapshot
	}

	var lines []entities.BOMLine
	total := 0.0
	for _, it := range src.Data.Items {
		if !it.Included {
			continue
		}
		unitCost := entities.Round2(it.UnitPriceExclVAT * g.costRatio)
		lineCost := entities.Round2(it.Quantity * unitCost)
		lines = append(lines, entities.BOMLine{
			ItemID:            it.ID,
			Name:              it.Name,
			Category:          it.Category,
			Quantity:          it.Quantity,
			UnitPriceExclVAT:  it.UnitPriceExclVAT,
			EstimatedUnitCost: unitCost,
			EstimatedLineCost: lineCost,
			CERelevant:        it.CERelevant,
			SafetyCritical:    it.SafetyCritical,
		})
		total += lineCost
	}

	snap := entities.BOMSnapshot{
		ID:                 uuid.NewString(),
		BOMNumber:          len(p.BOMSnapshots) + 1,
		Trigger:            trigger,
		SourceSnapshotID:   src.ID,
		Lines:              lines,
		TotalEstimatedCost: entities.Round2(total),
		CostRatio:          g.costRatio,
		GeneratedAt:        time.Now().UTC(),
	}
	log.Printf("[bom][generator] generated project_id=%s bom_number=%d lines=%d total_cost=%.2f", p.ID, snap.BOMNumber, len(lines), snap.TotalEstimatedCost)
	return snap, nil
}
