package library

import (
	"context"
	"time"

	"boatworks/internal/domain/entities"
	"boatworks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultLibraryTableName = "library_versions"

const (
	versionKindTemplate  = "template"
	versionKindProcedure = "procedure"
)

type libraryVersionItem struct {
	ID     string `dynamodbav:"id"`
	Kind   string `dynamodbav:"kind"`
	Status string `dynamodbav:"status"`
}

// PinningService reads the currently approved template and procedure
// versions from the library table and fixes them, together with the
// project's boat model version, into a LibraryPins value.
//
// Table requirements:
//   - PK: id (string); attributes kind, status
//
// The catalog is small (tens of rows), so a filtered scan is acceptable.
type PinningService struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILibraryPinningService = (*PinningService)(nil)

func NewPinningService(ddb *dynamodb.Client) *PinningService {
	return &PinningService{
		ddb:       ddb,
		tableName: getenvDefault("LIBRARY_VERSIONS_TABLE", defaultLibraryTableName),
	}
}

func (s *PinningService) PinLibraryVersions(ctx context.Context, p entities.Project) (entities.LibraryPins, error) {
	pins := entities.LibraryPins{
		BoatModelVersionID: p.Configuration.BoatModelVersionID,
		PinnedAt:           time.Now().UTC(),
		PinnedBy:           "system",
	}

	paginator := dynamodb.NewScanPaginator(s.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(s.tableName),
		FilterExpression: aws.String("#status = :approved"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":approved": &types.AttributeValueMemberS{Value: "approved"},
		},
	})
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return entities.LibraryPins{}, err
		}
		for _, raw := range out.Items {
			var it libraryVersionItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return entities.LibraryPins{}, err
			}
			switch it.Kind {
			case versionKindTemplate:
				pins.TemplateVersionIDs = append(pins.TemplateVersionIDs, it.ID)
			case versionKindProcedure:
				pins.ProcedureVersionIDs = append(pins.ProcedureVersionIDs, it.ID)
			}
		}
	}
	return pins, nil
}
