// Package sample provides the fixed profile and job posting used by demo runs.
package sample

import (
	"github.com/jonathan/resume-tailor/internal/types"
)

// ProfileURL and JobURL label the sample data in run metadata.
const (
	ProfileURL = "https://www.linkedin.com/in/alex-morgan-demo"
	JobURL     = "https://boards.greenhouse.io/northwind/jobs/4821"
)

var profile = types.Profile{
	Name:     "Alex Morgan",
	Headline: "Software Engineer | Full-Stack Web Applications",
	Location: "Seattle, WA",
	Summary: "Software engineer with seven years of experience building web applications and backend services. " +
		"Comfortable across the stack, from React interfaces to Go services and relational databases.",
	Experience: []types.Experience{
		{
			Title:    "Senior Software Engineer",
			Company:  "Brightline Analytics",
			Duration: "Mar 2021 - Present",
			Location: "Seattle, WA",
			Description: "Lead development of the customer reporting platform. Built a Go ingestion service " +
				"processing 40M events per day and a React dashboard used by 2,000 customers.",
			Skills: []string{"Go", "React", "TypeScript", "PostgreSQL"},
		},
		{
			Title:    "Software Engineer",
			Company:  "Harbor Logistics",
			Duration: "Jun 2018 - Feb 2021",
			Location: "Portland, OR",
			Description: "Developed shipment tracking APIs and internal tools. Migrated a monolith to containerized " +
				"services on AWS and cut deployment time from hours to minutes.",
			Skills: []string{"Node.js", "TypeScript", "AWS", "Docker"},
		},
		{
			Title:       "Junior Web Developer",
			Company:     "Cascade Digital",
			Duration:    "Jul 2016 - May 2018",
			Location:    "Portland, OR",
			Description: "Built responsive marketing sites and e-commerce features for agency clients.",
			Skills:      []string{"JavaScript", "HTML", "CSS"},
		},
	},
	Education: []types.Education{
		{
			School:   "University of Washington",
			Degree:   "Bachelor of Science",
			Field:    "Computer Science",
			Duration: "2012 - 2016",
			GPA:      "3.7",
		},
		{
			School:   "Coursera",
			Degree:   "Certificate",
			Field:    "Cloud Architecture",
			Duration: "2020",
		},
	},
	Skills: []string{
		"JavaScript", "TypeScript", "React", "Node.js", "Go", "SQL",
		"PostgreSQL", "AWS", "Docker", "REST APIs", "Git",
	},
	Certifications: []types.Certification{
		{Name: "AWS Certified Developer - Associate", Issuer: "Amazon Web Services", Date: "2020"},
	},
	Languages: []types.Language{
		{Name: "English", Proficiency: "Native"},
		{Name: "Spanish", Proficiency: "Professional working proficiency"},
	},
	Projects: []types.Project{
		{
			Name:         "tracelog",
			Description:  "Open-source structured log viewer for the terminal.",
			Technologies: []string{"Go"},
			URL:          "https://github.com/alexmorgan/tracelog",
		},
	},
	Volunteering: []types.Volunteering{},
	Awards:       []types.Award{},
}

var jobPosting = types.JobPosting{
	Title:           "Senior Full-Stack Engineer",
	Company:         "Northwind Health",
	Location:        "Remote (US)",
	EmploymentType:  "Full-time",
	ExperienceLevel: "Senior",
	Description: "Northwind Health is hiring a senior full-stack engineer to build the patient scheduling " +
		"platform used by clinics across the country.",
	Requirements: types.Requirements{
		Required: []string{
			"5+ years of professional software development",
			"Strong experience with React and TypeScript",
			"Experience designing REST APIs",
			"Solid SQL and relational database skills",
		},
		Preferred: []string{
			"Experience with Go",
			"Familiarity with AWS",
		},
		Education:      []string{"Bachelor's degree in Computer Science or equivalent experience"},
		Experience:     []string{"5+ years building production web applications"},
		Skills:         []string{"React", "TypeScript", "Node.js", "SQL", "Go", "AWS"},
		Certifications: []string{},
	},
	Responsibilities: []string{
		"Design and build features across the scheduling web app and its APIs",
		"Own services from design through production support",
		"Mentor engineers and review code",
	},
	Benefits: []string{"Remote-first team", "Health, dental and vision coverage", "401(k) match"},
	Keywords: []string{"full-stack", "React", "TypeScript", "REST APIs", "healthcare", "mentoring"},
	IndustryTerms: []string{"EHR", "patient scheduling"},
}

// Profile returns a fresh copy of the sample profile.
func Profile() *types.Profile {
	return profile.Clone()
}

// JobPosting returns a fresh copy of the sample job posting.
func JobPosting() *types.JobPosting {
	return jobPosting.Clone()
}

// Pair returns fresh copies of both.
func Pair() (*types.Profile, *types.JobPosting) {
	return Profile(), JobPosting()
}
