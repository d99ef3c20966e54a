package analyzer

func resumeFeedback() ResumeFeedback {
	return ResumeFeedback{
		Score:            82,
		ATSCompatibility: "Good",
		Sections: []Section{
			{Title: "Summary", Rating: RatingGood,
				Feedback: "Your summary is strong and effectively highlights your skills and experience."},
			{Title: "Work Experience", Rating: RatingNeedsImprovement,
				Feedback: "Your work experience section could use more quantifiable achievements. " +
					"Try adding metrics to showcase your impact."},
			{Title: "Skills", Rating: RatingGood,
				Feedback: "Great job listing relevant skills. Consider organizing them into categories for better readability."},
			{Title: "Education", Rating: RatingGood,
				Feedback: "Your education section is well-formatted and complete."},
		},
		MissingKeywords: []string{"project management", "agile", "cross-functional"},
		ImprovementSuggestions: []string{
			"Add more quantifiable achievements to your work experience",
			"Include the keywords missing from your resume",
			"Consider adding a projects section to highlight relevant work",
			"Ensure consistent formatting throughout the document",
		},
	}
}

func descriptionAnalysis() DescriptionAnalysis {
	return DescriptionAnalysis{
		Role:    "Frontend Developer",
		Company: "TechCorp Inc.",
		Skills: []Skill{
			{Name: "React", Type: "technical", Level: "advanced"},
			{Name: "TypeScript", Type: "technical", Level: "intermediate"},
			{Name: "CSS/SCSS", Type: "technical", Level: "advanced"},
			{Name: "JavaScript", Type: "technical", Level: "advanced"},
			{Name: "Git", Type: "technical", Level: "intermediate"},
			{Name: "Responsive Design", Type: "technical", Level: "advanced"},
		},
		Tools: []Tool{
			{Name: "Webpack", Category: "build"},
			{Name: "Jest", Category: "testing"},
			{Name: "Redux", Category: "state management"},
			{Name: "GitHub", Category: "version control"},
			{Name: "Jira", Category: "project management"},
		},
		Requirements: []string{
			"3+ years of experience with React",
			"Strong knowledge of TypeScript",
			"Experience with modern frontend build tools",
			"Understanding of responsive design principles",
			"Bachelor's degree in Computer Science or related field",
		},
		KeyPhrases: []string{
			"component-based architecture",
			"user-focused experiences",
			"cross-browser compatibility",
			"performance optimization",
			"team collaboration",
		},
		ResumeKeywords: []string{
			"React", "TypeScript", "JavaScript", "CSS", "SCSS", "Redux",
			"Webpack", "Jest", "responsive design", "frontend development",
			"component architecture", "web applications",
		},
	}
}
