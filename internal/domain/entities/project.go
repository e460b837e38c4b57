package entities

import "time"

// ProjectStatus represents the commercial/manufacturing lifecycle of a project.
//
// Domain notes:
//   - Transitions are governed by the lifecycle package; no other code may
//     move a project between statuses.
//   - The status partitions (editable/frozen/locked) gate configuration edits
//     and amendments.
type ProjectStatus string

const (
	ProjectStatusDraft            ProjectStatus = "draft"
	ProjectStatusQuoted           ProjectStatus = "quoted"
	ProjectStatusOfferSent        ProjectStatus = "offer_sent"
	ProjectStatusOrderConfirmed   ProjectStatus = "order_confirmed"
	ProjectStatusInProduction     ProjectStatus = "in_production"
	ProjectStatusReadyForDelivery ProjectStatus = "ready_for_delivery"
	ProjectStatusDelivered        ProjectStatus = "delivered"
	ProjectStatusClosed           ProjectStatus = "closed"
)

// LibraryPins captures the catalog versions that were approved at order
// confirmation time. Written exactly once per project: the first pin wins and
// later pinning attempts never replace it, since pins feed compliance
// documents.
type LibraryPins struct {
	TemplateVersionIDs  []string  `json:"template_version_ids"`
	ProcedureVersionIDs []string  `json:"procedure_version_ids"`
	BoatModelVersionID  string    `json:"boat_model_version_id"`
	PinnedAt            time.Time `json:"pinned_at"`
	PinnedBy            string    `json:"pinned_by"`
}

// ProductionStage is a coarse manufacturing phase. Stage task tracking
// mechanics live outside this service; the lifecycle only initializes the
// stage list when production starts.
type ProductionStage struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Sequence int    `json:"sequence"`
	Status   string `json:"status"`
}

// Project is the aggregate root. It exclusively owns its configuration,
// configuration snapshots, amendments and BOM snapshots; the client is a weak
// reference by id only.
//
// Storage model (DynamoDB):
//   - PK: id
//   - whole-aggregate document writes guarded by Version (conditional put)
type Project struct {
	ID                     string                  `json:"id"`
	Name                   string                  `json:"name"`
	ClientID               string                  `json:"client_id"`
	Status                 ProjectStatus           `json:"status"`
	Configuration          ConfigurationState      `json:"configuration"`
	ConfigurationSnapshots []ConfigurationSnapshot `json:"configuration_snapshots"`
	Amendments             []ProjectAmendment      `json:"amendments"`
	BOMSnapshots           []BOMSnapshot           `json:"bom_snapshots"`
	LibraryPins            *LibraryPins            `json:"library_pins,omitempty"`
	ProductionStages       []ProductionStage       `json:"production_stages,omitempty"`
	Archived               bool                    `json:"archived"`
	ArchivedAt             *time.Time              `json:"archived_at,omitempty"`
	Version                int64                   `json:"version"`
	CreatedAt              time.Time               `json:"created_at"`
	UpdatedAt              time.Time               `json:"updated_at"`
}

// LatestConfigurationSnapshot returns the most recent snapshot, or nil.
func (p *Project) LatestConfigurationSnapshot() *ConfigurationSnapshot {
	if len(p.ConfigurationSnapshots) == 0 {
		return nil
	}
	return &p.ConfigurationSnapshots[len(p.ConfigurationSnapshots)-1]
}
