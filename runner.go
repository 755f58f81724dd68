package neograph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// QueryRunner abstracts the execution of a Cypher query into a fully
// buffered result, so that GraphLoader can be exercised against a fake
// runner in tests as easily as against a live database.
type QueryRunner interface {
	Run(ctx context.Context, query string, params map[string]interface{}) (*neo4j.EagerResult, error)
}

// BoltExecutor is a QueryRunner backed by the official Neo4j Go driver.
type BoltExecutor struct {
	Driver neo4j.DriverWithContext
	DBName string
}

// NewBoltExecutor creates a BoltExecutor connected to the given instance.
//
// Parameters:
//   - uri: The connection URI for the Neo4j instance (e.g., "neo4j://localhost:7687").
//   - username: The username for authentication.
//   - password: The password for authentication.
//   - dbName: The name of the database to run queries against.
//
// Returns:
//
//	A pointer to the new BoltExecutor, or an error if the driver cannot be created.
func NewBoltExecutor(uri, username, password, dbName string) (*BoltExecutor, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("could not create Neo4j driver: %w", err)
	}
	return &BoltExecutor{Driver: driver, DBName: dbName}, nil
}

// Verify checks connectivity to the database.
func (e *BoltExecutor) Verify(ctx context.Context) error {
	return e.Driver.VerifyConnectivity(ctx)
}

// Run executes a Cypher query through neo4j.ExecuteQuery, which manages
// sessions and transactions internally, and buffers the whole result.
func (e *BoltExecutor) Run(ctx context.Context, query string, params map[string]interface{}) (*neo4j.EagerResult, error) {
	result, err := neo4j.ExecuteQuery(
		ctx,
		e.Driver,
		query,
		params,
		neo4j.EagerResultTransformer,
		neo4j.ExecuteQueryWithDatabase(e.DBName),
	)
	if err != nil {
		return nil, fmt.Errorf("error executing neo4j query: %w", err)
	}
	return result, nil
}
