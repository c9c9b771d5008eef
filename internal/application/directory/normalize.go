// Package directory implements the listing pipeline shared by the tutor
// directory and the job board: normalization of loosely-typed upstream
// records, filtering, proximity sorting, and the incremental reveal window.
// Every stage is a pure function over in-memory slices.
package directory

import (
	"math"
	"strconv"
	"strings"

	"github.com/aplusacademy/tutor-directory/backend/internal/domain/entities"
)

// Field aliases observed across upstream deployments. The sheet column
// headers changed between sites, so each canonical field resolves through
// an ordered alias list; the first key present wins.
var (
	tutorNameAliases       = []string{"Name", "FullName"}
	tutorSubjectAliases    = []string{"Subjects", "Subject"}
	tutorCityAliases       = []string{"City", "District"}
	tutorPhoneAliases      = []string{"Phone", "Contact"}
	tutorImageAliases      = []string{"Image URL", "ImageURL", "Thumbnail"}
	tutorAreaAliases       = []string{"Area1", "Area2", "Area3"}
	jobGradeAliases        = []string{"Grade", "Class"}
	jobSubjectAliases      = []string{"Subjects", "Subject"}
	jobTimingAliases       = []string{"Timing", "Time"}
	jobFeeAliases          = []string{"Fee", "Fees"}
	jobContactAliases      = []string{"Contact", "Phone"}
	jobWhatsappAliases     = []string{"WhatsappMessage", "whatsapp_message"}
	jobCityAliases         = []string{"City", "city"}
	jobLocationAliases     = []string{"Location", "location"}
	jobGenderAliases       = []string{"Gender", "gender"}
	jobStatusAliases       = []string{"Status", "status"}
	jobTitleAliases        = []string{"Title", "title"}
	jobSchoolAliases       = []string{"School", "school"}
	jobStudentCountAliases = []string{"Students", "students"}
)

// NormalizeTutor maps one raw upstream record to a canonical Tutor. It is
// total over JSON-compatible input: every field falls back to a documented
// default rather than erroring, so one malformed row never fails the list.
func NormalizeTutor(raw map[string]any, index int) entities.Tutor {
	lat, ok := floatField(raw, "Latitude")
	if !ok {
		lat = entities.FallbackLatitude
	}
	lng, ok := floatField(raw, "Longitude")
	if !ok {
		lng = entities.FallbackLongitude
	}

	return entities.Tutor{
		ID:            index,
		Name:          stringField(raw, tutorNameAliases, "Unknown"),
		Subjects:      subjectList(firstPresent(raw, tutorSubjectAliases)),
		Qualification: stringField(raw, []string{"Qualification"}, ""),
		Experience:    stringField(raw, []string{"Experience"}, ""),
		City:          stringField(raw, tutorCityAliases, ""),
		Phone:         stringField(raw, tutorPhoneAliases, ""),
		Bio:           stringField(raw, []string{"Bio"}, ""),
		ImageURL:      stringField(raw, tutorImageAliases, ""),
		Areas:         areaList(raw),
		Location:      entities.Location{Latitude: lat, Longitude: lng},
		Verified:      strings.EqualFold(strings.TrimSpace(stringField(raw, []string{"Verified"}, "")), "yes"),
	}
}

// NormalizeJob maps one raw upstream posting to a canonical Job.
func NormalizeJob(raw map[string]any, index int) entities.Job {
	title := stringField(raw, jobTitleAliases, "Home Tutor Required")

	message := stringField(raw, jobWhatsappAliases, "")
	if message == "" {
		message = "Hi, I want to apply for " + title + "."
	}

	fee, ok := floatField(raw, jobFeeAliases...)
	if !ok {
		fee = 0
	}

	return entities.Job{
		ID:              index,
		Title:           title,
		City:            stringField(raw, jobCityAliases, ""),
		Location:        stringField(raw, jobLocationAliases, ""),
		Grade:           stringField(raw, jobGradeAliases, ""),
		School:          stringField(raw, jobSchoolAliases, ""),
		Students:        stringField(raw, jobStudentCountAliases, ""),
		Subjects:        stringField(raw, jobSubjectAliases, ""),
		Timing:          stringField(raw, jobTimingAliases, ""),
		Fee:             fee,
		Gender:          stringField(raw, jobGenderAliases, ""),
		Contact:         digitsOnly(stringField(raw, jobContactAliases, "")),
		Status:          strings.ToLower(strings.TrimSpace(stringField(raw, jobStatusAliases, ""))),
		WhatsappMessage: message,
	}
}

// NormalizeTutors maps a raw batch, assigning positional IDs.
func NormalizeTutors(raw []map[string]any) []entities.Tutor {
	tutors := make([]entities.Tutor, len(raw))
	for i, record := range raw {
		tutors[i] = NormalizeTutor(record, i)
	}
	return tutors
}

// NormalizeJobs maps a raw batch, assigning positional IDs.
func NormalizeJobs(raw []map[string]any) []entities.Job {
	jobs := make([]entities.Job, len(raw))
	for i, record := range raw {
		jobs[i] = NormalizeJob(record, i)
	}
	return jobs
}

func firstPresent(raw map[string]any, aliases []string) any {
	for _, key := range aliases {
		if v, ok := raw[key]; ok && v != nil {
			return v
		}
	}
	return nil
}

func stringField(raw map[string]any, aliases []string, fallback string) string {
	v := firstPresent(raw, aliases)
	if v == nil {
		return fallback
	}
	s := coerceString(v)
	if s == "" {
		return fallback
	}
	return s
}

// coerceString renders scalars the way the sheet column would have held
// them; composite values are not meaningful as field text.
func coerceString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

func floatField(raw map[string]any, aliases ...string) (float64, bool) {
	v := firstPresent(raw, aliases)
	if v == nil {
		return 0, false
	}
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case int:
		f = float64(t)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	// ParseFloat accepts "NaN" and "Inf" spellings. Neither is a usable
	// coordinate or fee, so they take the fallback path like any other
	// unparseable value.
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// subjectList accepts a comma-separated string, an already-split sequence,
// or nothing, and yields trimmed non-empty entries.
func subjectList(v any) []string {
	var parts []string
	switch t := v.(type) {
	case nil:
		return []string{}
	case []string:
		parts = t
	case []any:
		for _, item := range t {
			parts = append(parts, coerceString(item))
		}
	default:
		parts = strings.Split(coerceString(v), ",")
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func areaList(raw map[string]any) []string {
	out := make([]string, 0, len(tutorAreaAliases))
	for _, key := range tutorAreaAliases {
		if v, ok := raw[key]; ok {
			if area := strings.TrimSpace(coerceString(v)); area != "" {
				out = append(out, area)
			}
		}
	}
	return out
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
