package cli

import "github.com/skillbridge/skillbridge/internal/match"

// Demo fixtures for the dashboards. A real deployment would feed these from
// the analysis pipeline; the client ships with a static set so the commands
// work without a backend.

var demoJobMatches = []match.JobMatch{
	{
		JobID:           "job-1",
		JobTitle:        "Machine Learning Engineer",
		Company:         "TechCorp AI",
		MatchPercentage: 92,
		ReadinessScore:  90,
		StrengthAreas:   []string{"Python", "Statistics"},
		MissingSkills: []match.SkillGap{
			{SkillName: "Deep Learning", Priority: match.PriorityCritical, EstimatedWeeks: 8},
		},
	},
	{
		JobID:           "job-2",
		JobTitle:        "Data Scientist",
		Company:         "DataWorks",
		MatchPercentage: 78,
		ReadinessScore:  75,
		StrengthAreas:   []string{"SQL", "Visualization"},
		MissingSkills: []match.SkillGap{
			{SkillName: "Deep Learning", Priority: match.PriorityCritical, EstimatedWeeks: 8},
			{SkillName: "PyTorch", Priority: match.PriorityCritical, EstimatedWeeks: 6},
			{SkillName: "TensorFlow", Priority: match.PriorityOptional, EstimatedWeeks: 6},
		},
	},
	{
		JobID:           "job-3",
		JobTitle:        "MLOps Engineer",
		Company:         "CloudScale",
		MatchPercentage: 52,
		ReadinessScore:  48,
		MissingSkills: []match.SkillGap{
			{SkillName: "MLOps", Priority: match.PriorityCritical, EstimatedWeeks: 12},
			{SkillName: "Docker", Priority: match.PriorityCritical, EstimatedWeeks: 4},
			{SkillName: "Kubernetes", Priority: match.PriorityOptional, EstimatedWeeks: 8},
		},
	},
}

var demoCandidateMatches = []match.CandidateMatch{
	{
		CandidateID:     "cand-1",
		Name:            "Sarah Chen",
		Title:           "ML Engineer",
		MatchPercentage: 88,
		ReadinessScore:  91,
		StrengthAreas:   []string{"Python", "Deep Learning"},
	},
	{
		CandidateID:     "cand-2",
		Name:            "Marcus Webb",
		Title:           "Data Scientist",
		MatchPercentage: 78,
		ReadinessScore:  74,
		MissingSkills: []match.SkillGap{
			{SkillName: "MLOps", Priority: match.PriorityCritical},
		},
	},
	{
		CandidateID:     "cand-3",
		Name:            "Priya Nair",
		Title:           "Software Engineer",
		MatchPercentage: 72,
		ReadinessScore:  69,
		MissingSkills: []match.SkillGap{
			{SkillName: "Statistics", Priority: match.PriorityCritical},
			{SkillName: "PyTorch", Priority: match.PriorityOptional},
		},
	},
	{
		CandidateID:     "cand-4",
		Name:            "Tom Okafor",
		Title:           "Backend Engineer",
		MatchPercentage: 65,
		ReadinessScore:  58,
	},
}
