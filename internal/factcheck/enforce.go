// Package factcheck restores immutable facts in a tailored profile.
//
// Tailoring may rewrite the summary and experience descriptions and may reorder skills.
// Everything else must match the original profile, whatever the generator returned.
package factcheck

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// WholeField is the Index used for corrections that replace an entire field or section.
const WholeField = -1

// Correction reasons.
const (
	ReasonChanged        = "immutable field changed"
	ReasonCountMismatch  = "entry count changed"
	ReasonEmpty          = "tailored text was empty"
	ReasonAddedSkill     = "skill not in original profile"
	ReasonNoSkillsLeft   = "no original skills remained"
	ReasonMissingProfile = "tailored profile was missing"
)

// Enforce returns a copy of candidate with every immutable field restored from original,
// plus the list of corrections made. Neither input is modified.
func Enforce(original, candidate *types.Profile) (*types.Profile, []types.FieldCorrection) {
	if original == nil {
		return candidate.Clone(), nil
	}
	if candidate == nil {
		return original.Clone(), []types.FieldCorrection{{
			Field: "profile", Index: WholeField, Reason: ReasonMissingProfile,
		}}
	}

	e := &enforcer{out: candidate.Clone()}

	e.restoreString("name", WholeField, &e.out.Name, original.Name)
	e.restoreString("headline", WholeField, &e.out.Headline, original.Headline)
	e.restoreString("location", WholeField, &e.out.Location, original.Location)
	e.restoreIfEmpty("summary", WholeField, &e.out.Summary, original.Summary)

	e.enforceExperience(original.Experience)
	e.enforceSkills(original.Skills)

	if !sameSection(original.Education, e.out.Education) {
		e.out.Education = original.Clone().Education
		e.record("education", WholeField, "", "", ReasonChanged)
	}
	if !sameSection(original.Certifications, e.out.Certifications) {
		e.out.Certifications = original.Clone().Certifications
		e.record("certifications", WholeField, "", "", ReasonChanged)
	}
	if !sameSection(original.Languages, e.out.Languages) {
		e.out.Languages = original.Clone().Languages
		e.record("languages", WholeField, "", "", ReasonChanged)
	}
	if !sameSection(original.Projects, e.out.Projects) {
		e.out.Projects = original.Clone().Projects
		e.record("projects", WholeField, "", "", ReasonChanged)
	}
	if !sameSection(original.Volunteering, e.out.Volunteering) {
		e.out.Volunteering = original.Clone().Volunteering
		e.record("volunteering", WholeField, "", "", ReasonChanged)
	}
	if !sameSection(original.Awards, e.out.Awards) {
		e.out.Awards = original.Clone().Awards
		e.record("awards", WholeField, "", "", ReasonChanged)
	}

	return e.out, e.corrections
}

type enforcer struct {
	out         *types.Profile
	corrections []types.FieldCorrection
}

func (e *enforcer) record(field string, index int, original, candidate, reason string) {
	e.corrections = append(e.corrections, types.FieldCorrection{
		Field:     field,
		Index:     index,
		Original:  original,
		Candidate: candidate,
		Reason:    reason,
	})
}

func (e *enforcer) restoreString(field string, index int, dst *string, original string) {
	if *dst != original {
		e.record(field, index, original, *dst, ReasonChanged)
		*dst = original
	}
}

func (e *enforcer) restoreIfEmpty(field string, index int, dst *string, original string) {
	if strings.TrimSpace(*dst) == "" && original != "" {
		e.record(field, index, original, *dst, ReasonEmpty)
		*dst = original
	}
}

func (e *enforcer) enforceExperience(original []types.Experience) {
	if len(e.out.Experience) != len(original) {
		e.record("experience", WholeField,
			strconv.Itoa(len(original)), strconv.Itoa(len(e.out.Experience)), ReasonCountMismatch)
		e.out.Experience = (&types.Profile{Experience: original}).Clone().Experience
		return
	}

	for i := range original {
		orig := original[i]
		exp := &e.out.Experience[i]

		e.restoreString("title", i, &exp.Title, orig.Title)
		e.restoreString("company", i, &exp.Company, orig.Company)
		e.restoreString("duration", i, &exp.Duration, orig.Duration)
		e.restoreString("location", i, &exp.Location, orig.Location)
		e.restoreIfEmpty("description", i, &exp.Description, orig.Description)

		if !sameSection(orig.Skills, exp.Skills) {
			e.record("experience.skills", i, strings.Join(orig.Skills, ", "), strings.Join(exp.Skills, ", "), ReasonChanged)
			exp.Skills = append([]string(nil), orig.Skills...)
		}
	}
}

// enforceSkills keeps the candidate's order but only original skills, in their original
// spelling and without duplicates.
func (e *enforcer) enforceSkills(original []string) {
	spelling := make(map[string]string, len(original))
	for _, s := range original {
		key := strings.ToLower(strings.TrimSpace(s))
		if _, ok := spelling[key]; !ok {
			spelling[key] = s
		}
	}

	kept := make([]string, 0, len(e.out.Skills))
	seen := make(map[string]bool, len(e.out.Skills))
	for _, s := range e.out.Skills {
		key := strings.ToLower(strings.TrimSpace(s))
		orig, ok := spelling[key]
		if !ok {
			e.record("skills", WholeField, "", s, ReasonAddedSkill)
			continue
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, orig)
	}

	if len(kept) == 0 && len(original) > 0 {
		e.record("skills", WholeField, strings.Join(original, ", "), strings.Join(e.out.Skills, ", "), ReasonNoSkillsLeft)
		kept = append([]string(nil), original...)
	}
	e.out.Skills = kept
}

// sameSection compares two sections, treating nil and empty as equal.
func sameSection[T any](a, b []T) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return reflect.DeepEqual(a, b)
}
