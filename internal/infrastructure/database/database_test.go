package database

import (
	"path/filepath"
	"testing"

	"brickonomics/pkg/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLite(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	var fk int
	require.NoError(t, db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	require.Equal(t, 1, fk)
}

func TestTableSpecs(t *testing.T) {
	cfg := &config.Config{MaterialsTable: "m", LaborRatesTable: "l", EstimatesTable: "e"}

	specs := TableSpecs(cfg)
	require.Len(t, specs, 3)
	require.Equal(t, "m", aws.ToString(specs[0].TableName))
	require.Empty(t, specs[0].GlobalSecondaryIndexes)

	est := specs[2]
	require.Equal(t, "e", aws.ToString(est.TableName))
	require.Len(t, est.GlobalSecondaryIndexes, 1)
	require.Equal(t, EstimatesProjectTypeIndex, aws.ToString(est.GlobalSecondaryIndexes[0].IndexName))
	require.Len(t, est.AttributeDefinitions, 3)
}
