package guidesync

import (
	"encoding/csv"
	"os"
	"strconv"
)

// ReadIDList pulls candidate guide ids out of the export csv the ops team
// drops next to the binary. Only the first column matters, rows whose
// first cell is not a number (the header, stray notes) are skipped.
func ReadIDList(path string) ([]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	var ids []int64
	for _, record := range records {
		if len(record) == 0 {
			continue
		}
		id, err := strconv.ParseInt(record[0], 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
