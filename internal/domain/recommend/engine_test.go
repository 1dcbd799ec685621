package recommend

import "testing"

func TestExtractPreferences(t *testing.T) {
	apps := []AppliedJob{
		{Location: "Remote", JobType: "full-time", ExperienceLevel: 2},
		{Location: "Remote", JobType: "contract", ExperienceLevel: 4},
		{Location: "Jakarta", JobType: "full-time", ExperienceLevel: 2},
	}

	p := ExtractPreferences(apps)

	if len(p.Locations) != 2 || !p.HasLocation("Remote") || !p.HasLocation("Jakarta") {
		t.Fatalf("unexpected locations: %v", p.Locations)
	}
	if len(p.JobTypes) != 2 || !p.HasJobType("contract") {
		t.Fatalf("unexpected job types: %v", p.JobTypes)
	}
	if len(p.ExperienceLevels) != 2 || !p.HasExperienceLevel(4) {
		t.Fatalf("unexpected experience levels: %v", p.ExperienceLevels)
	}
}

func TestExtractPreferences_Empty(t *testing.T) {
	p := ExtractPreferences(nil)
	if !p.Empty() {
		t.Fatalf("expected empty preference set")
	}
	if _, _, ok := p.ExperienceBounds(); ok {
		t.Fatalf("expected no experience bounds")
	}
}

func TestExperienceBounds(t *testing.T) {
	p := ExtractPreferences([]AppliedJob{
		{ExperienceLevel: 2},
		{ExperienceLevel: 5},
	})

	lo, hi, ok := p.ExperienceBounds()
	if !ok {
		t.Fatalf("expected bounds")
	}
	if lo != 1 || hi != 6 {
		t.Fatalf("expected [1,6], got [%d,%d]", lo, hi)
	}
}

func TestExperienceBounds_FlooredAtZero(t *testing.T) {
	p := ExtractPreferences([]AppliedJob{{ExperienceLevel: 0}})

	lo, hi, ok := p.ExperienceBounds()
	if !ok || lo != 0 || hi != 1 {
		t.Fatalf("expected [0,1], got [%d,%d] ok=%v", lo, hi, ok)
	}
}

func TestScore_AllComponents(t *testing.T) {
	prefs := ExtractPreferences([]AppliedJob{
		{Location: "Remote", JobType: "full-time", ExperienceLevel: 3},
	})
	c := Candidate{
		Requirements:    []string{"Python", "SQL"},
		Location:        "Remote",
		JobType:         "full-time",
		ExperienceLevel: 3,
	}

	got := Score(c, []string{"python", "sql"}, prefs)
	if got != 12.0 {
		t.Fatalf("expected 12.0, got %v", got)
	}
}

func TestScore_PartialSkillMatch(t *testing.T) {
	prefs := ExtractPreferences(nil)
	c := Candidate{Requirements: []string{"Go", "Rust", "Kubernetes"}}

	got := Score(c, []string{"go"}, prefs)
	if got != 1.7 {
		t.Fatalf("expected 1.7, got %v", got)
	}
}

func TestScore_NoRequirements(t *testing.T) {
	got := Score(Candidate{}, []string{"Go"}, ExtractPreferences(nil))
	if got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestScore_SkillMatchIsCaseInsensitiveEquality(t *testing.T) {
	prefs := ExtractPreferences(nil)
	c := Candidate{Requirements: []string{"JavaScript"}}

	if got := Score(c, []string{"javascript"}, prefs); got != 5.0 {
		t.Fatalf("expected 5.0, got %v", got)
	}
	// Substrings do not count as a skill match.
	if got := Score(c, []string{"Java"}, prefs); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestScore_RankingFavorsBroaderOverlap(t *testing.T) {
	skills := []string{"Python", "SQL"}
	prefs := ExtractPreferences([]AppliedJob{
		{Location: "Remote", JobType: "full-time", ExperienceLevel: 3},
	})

	both := Candidate{
		Requirements: []string{"Python", "SQL"},
		Location:     "Remote",
	}
	oneSkill := Candidate{
		Requirements: []string{"Python", "Haskell"},
		Location:     "Onsite",
	}

	if Score(both, skills, prefs) <= Score(oneSkill, skills, prefs) {
		t.Fatalf("expected broader overlap to rank higher")
	}
}
