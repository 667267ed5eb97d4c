package domain

import (
	"fmt"
	"strings"
)

// projectCodeBaseLen is the number of letters kept from a project name.
const projectCodeBaseLen = 4

// ProjectCodeBase derives the code prefix from a project name: ASCII letters
// only, upper-cased, at most four of them. Names without letters give "".
func ProjectCodeBase(name string) string {
	letters := make([]byte, 0, projectCodeBaseLen)
	for i := 0; i < len(name) && len(letters) < projectCodeBaseLen; i++ {
		c := name[i]
		if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
			letters = append(letters, c)
		}
	}
	return strings.ToUpper(string(letters))
}

// FormatProjectCode joins base and version: "PHOE-2".
func FormatProjectCode(base string, version int) string {
	return fmt.Sprintf("%s-%d", base, version)
}

// TaskCodeParts carries every attribute a task code is assembled from.
type TaskCodeParts struct {
	OrgCode        string
	ProjectCode    string
	ProjectVersion int
	ResourceSerial int
	SprintNumber   int
	ModuleCode     string
	ModuleSerial   int
	TaskSerial     int
}

// FormatTaskCode renders ORG/PROJECTCODEvvv/Rn/Sn/MODULEn/nnn, with the
// project version and the task serial zero padded to three digits.
func FormatTaskCode(p TaskCodeParts) string {
	return fmt.Sprintf("%s/%s%03d/R%d/S%d/%s%d/%03d",
		p.OrgCode,
		p.ProjectCode, p.ProjectVersion,
		p.ResourceSerial,
		p.SprintNumber,
		p.ModuleCode, p.ModuleSerial,
		p.TaskSerial,
	)
}
