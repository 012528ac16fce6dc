package helpers

import (
	"os"
	"strings"
)

func IsDeployed() bool {
	sstStage := os.Getenv("SST_STAGE")
	// feature branches deploy to aws as `feature-*`
	return sstStage == "prod" || strings.HasPrefix(sstStage, "feature-")
}

func GetDbTableName(tablePrefix string) string {
	if !IsDeployed() {
		return tablePrefix
	}
	return os.Getenv("SST_Table_tableName_" + tablePrefix)
}
