package platform

import (
	"log"
	"strings"

	"github.com/galaview/gala-presenter/internal/model"
)

// Expected column labels, matched case-insensitively (variant A)
const (
	ColKind    = "rodzaj olimpiady"
	ColName    = "nazwa olimpiady"
	ColStudent = "reprezentacja"
	ColMedal   = "medal"
	ColSchool  = "nazwa szkoły"
)

// Expected column labels (variant B)
const (
	ColContest   = "nazwa konkursu"
	ColOrganizer = "organizator"
	ColWinner    = "laureat"
	ColWinSchool = "szkoła"
	ColRegion    = "województwo"
)

// rowState classifies a data row after carry-forward resolution
type rowState int

const (
	// stateNoKey: no kind is in effect, the row is skipped entirely
	stateNoKey rowState = iota

	// stateKeyOnly: a kind is in effect but no olympiad name; the row
	// creates or confirms a kind-only group (a pure section header)
	stateKeyOnly

	// stateKeyName: both kind and olympiad name are in effect; the row
	// may carry a participant
	stateKeyName
)

// findColumn resolves a column index by case-insensitive exact label match
func findColumn(cols []RawColumn, label string) int {
	for i, col := range cols {
		if strings.EqualFold(strings.TrimSpace(col.Label), label) {
			return i
		}
	}
	return -1
}

// findHeaderCell resolves a column index from a header row's cell text
func findHeaderCell(headers []string, label string) int {
	for i, h := range headers {
		if h == strings.ToLower(label) {
			return i
		}
	}
	return -1
}

// cellValue extracts a trimmed string for a resolved column index; a
// missing index or null cell yields an empty string
func cellValue(row RawRow, idx int) string {
	if idx == -1 || idx >= len(row.Cells) {
		return ""
	}
	return row.Cells[idx].String()
}

// headerTexts lowercases and trims a row's cells for header-row fallback
func headerTexts(row RawRow) []string {
	headers := make([]string, len(row.Cells))
	for i, cell := range row.Cells {
		headers[i] = strings.ToLower(cell.String())
	}
	return headers
}

// classifyRow resolves the carry-forward state for a row's key fields
func classifyRow(kind, name string) rowState {
	switch {
	case kind == "":
		return stateNoKey
	case name == "":
		return stateKeyOnly
	default:
		return stateKeyName
	}
}

// ParseKinds normalizes a raw table into the kind/olympiad/participant
// hierarchy (variant A). Kind and olympiad values carry forward from the
// nearest preceding non-empty cell. Kinds are merged by title text, so two
// separated row blocks sharing a title end up in one group; olympiad names
// are merged only within their kind. If the key columns cannot be resolved,
// even after treating the first data row as a header row, the function
// fails soft: it logs a warning and returns an empty hierarchy.
func ParseKinds(table *RawTable) []*model.Kind {
	if table == nil {
		return nil
	}

	idxKind := findColumn(table.Cols, ColKind)
	idxName := findColumn(table.Cols, ColName)
	idxStudent := findColumn(table.Cols, ColStudent)
	idxMedal := findColumn(table.Cols, ColMedal)
	idxSchool := findColumn(table.Cols, ColSchool)

	dataRows := table.Rows
	if idxKind == -1 && len(table.Rows) > 0 {
		headers := headerTexts(table.Rows[0])
		idxKind = findHeaderCell(headers, ColKind)
		idxName = findHeaderCell(headers, ColName)
		idxStudent = findHeaderCell(headers, ColStudent)
		idxMedal = findHeaderCell(headers, ColMedal)
		idxSchool = findHeaderCell(headers, ColSchool)
		dataRows = table.Rows[1:]
	}

	if idxKind == -1 || idxName == -1 {
		log.Printf("Warning: columns %q/%q not found, returning empty hierarchy", ColKind, ColName)
		return nil
	}

	kindByTitle := make(map[string]*model.Kind)
	var kinds []*model.Kind
	lastKind := ""
	lastName := ""

	for _, row := range dataRows {
		kindRaw := cellValue(row, idxKind)
		nameRaw := cellValue(row, idxName)
		student := cellValue(row, idxStudent)
		medalRaw := cellValue(row, idxMedal)
		school := cellValue(row, idxSchool)

		if kindRaw == "" && nameRaw == "" && student == "" && medalRaw == "" && school == "" {
			continue
		}

		if kindRaw != "" {
			lastKind = kindRaw
		}
		if nameRaw != "" {
			lastName = nameRaw
		}

		switch classifyRow(lastKind, lastName) {
		case stateNoKey:
			continue

		case stateKeyOnly:
			if _, ok := kindByTitle[lastKind]; !ok {
				kind := &model.Kind{Title: lastKind}
				kindByTitle[lastKind] = kind
				kinds = append(kinds, kind)
			}
			continue

		case stateKeyName:
			kind, ok := kindByTitle[lastKind]
			if !ok {
				kind = &model.Kind{Title: lastKind}
				kindByTitle[lastKind] = kind
				kinds = append(kinds, kind)
			}

			olympiad := kind.Olympiad(lastName)
			if olympiad == nil {
				olympiad = &model.Olympiad{Name: lastName}
				kind.Olympiads = append(kind.Olympiads, olympiad)
			}

			if student != "" || school != "" || medalRaw != "" {
				olympiad.Participants = append(olympiad.Participants, model.Participant{
					Name:   student,
					School: school,
					Medal:  model.NormalizeMedal(medalRaw),
				})
			}
		}
	}

	return kinds
}

// ParseContests normalizes a raw table into the flat contest/winner list
// (variant B). A non-empty title cell closes the previous contest and opens
// a new one; a winner cell on any row appends to the currently open
// contest. The final open contest is flushed after the walk. Soft-fails to
// an empty list when the title column cannot be resolved.
func ParseContests(table *RawTable) []*model.Contest {
	if table == nil {
		return nil
	}

	idxTitle := findColumn(table.Cols, ColContest)
	idxOrganizer := findColumn(table.Cols, ColOrganizer)
	idxWinner := findColumn(table.Cols, ColWinner)
	idxSchool := findColumn(table.Cols, ColWinSchool)
	idxRegion := findColumn(table.Cols, ColRegion)

	dataRows := table.Rows
	if idxTitle == -1 && len(table.Rows) > 0 {
		headers := headerTexts(table.Rows[0])
		idxTitle = findHeaderCell(headers, ColContest)
		idxOrganizer = findHeaderCell(headers, ColOrganizer)
		idxWinner = findHeaderCell(headers, ColWinner)
		idxSchool = findHeaderCell(headers, ColWinSchool)
		idxRegion = findHeaderCell(headers, ColRegion)
		dataRows = table.Rows[1:]
	}

	if idxTitle == -1 {
		log.Printf("Warning: column %q not found, returning empty contest list", ColContest)
		return nil
	}

	var contests []*model.Contest
	var current *model.Contest

	for _, row := range dataRows {
		title := cellValue(row, idxTitle)
		organizer := cellValue(row, idxOrganizer)
		winner := cellValue(row, idxWinner)
		school := cellValue(row, idxSchool)
		region := cellValue(row, idxRegion)

		if title == "" && organizer == "" && winner == "" && school == "" && region == "" {
			continue
		}

		if title != "" {
			if current != nil {
				contests = append(contests, current)
			}
			current = &model.Contest{Title: title, Organizer: organizer}
		}

		if winner != "" && current != nil {
			current.Winners = append(current.Winners, model.Winner{
				Name:   winner,
				School: school,
				Region: region,
			})
		}
	}

	if current != nil {
		contests = append(contests, current)
	}
	return contests
}
