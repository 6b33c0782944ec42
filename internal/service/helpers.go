package service

import (
	"thematic-analysis-backend/internal/database/models"
	apperrors "thematic-analysis-backend/internal/errors"

	"github.com/google/uuid"
)

// uniqueIDs drops duplicate ids while keeping the first occurrence order
func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	result := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}

// missingAssignmentIDs returns the requested ids that were not loaded, in request order
func missingAssignmentIDs(requested []uuid.UUID, found []models.CodeAssignment) []uuid.UUID {
	present := make(map[uuid.UUID]struct{}, len(found))
	for _, a := range found {
		present[a.ID] = struct{}{}
	}

	var missing []uuid.UUID
	for _, id := range requested {
		if _, ok := present[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

// singleProject returns the project shared by all assignments or ErrMixedProjects
func singleProject(assignments []models.CodeAssignment) (uuid.UUID, error) {
	if len(assignments) == 0 {
		return uuid.Nil, apperrors.ErrNoEligibleAssignments
	}
	projectID := assignments[0].ProjectID
	for _, a := range assignments[1:] {
		if a.ProjectID != projectID {
			return uuid.Nil, apperrors.ErrMixedProjects
		}
	}
	return projectID, nil
}

