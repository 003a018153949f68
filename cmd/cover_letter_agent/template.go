package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var templateCommand = &cobra.Command{
	Use:   "create-profile-template",
	Short: "Write an example profile text file",
	Long:  "Writes an example free-text profile to the given path. Edit it with your own information and pass it to generate with --profile.",
	RunE:  runTemplateCmd,
}

var templateOutput string

func init() {
	templateCommand.Flags().StringVarP(&templateOutput, "output", "o", "example_profile.txt", "Output file path for the example profile")
	rootCmd.AddCommand(templateCommand)
}

func runTemplateCmd(_ *cobra.Command, _ []string) error {
	if err := os.WriteFile(templateOutput, []byte(profileTemplate), 0o644); err != nil {
		return fmt.Errorf("failed to write profile template: %w", err)
	}

	fmt.Printf("Profile template created: %s\n", templateOutput)
	fmt.Println("Edit this file with your information and use it with the --profile option.")
	return nil
}

const profileTemplate = `John Doe
Software Engineer

Contact Information:
Email: john.doe@email.com
Phone: (555) 123-4567
LinkedIn: https://linkedin.com/in/johndoe
GitHub: https://github.com/johndoe
Location: San Francisco, CA

Professional Summary:
Experienced software engineer with 5+ years of experience in full-stack development.
Proficient in Python, JavaScript, and cloud technologies. Strong background in building
scalable web applications and working in agile environments.

Technical Skills:
- Programming Languages: Python, JavaScript, TypeScript, Java
- Frameworks: React, Node.js, Django, Flask
- Databases: PostgreSQL, MongoDB, Redis
- Cloud: AWS, Docker, Kubernetes
- Tools: Git, Jenkins, JIRA

Work Experience:

Senior Software Engineer | TechCorp Inc.
January 2022 - Present
- Led development of microservices architecture serving 1M+ users daily
- Implemented CI/CD pipelines reducing deployment time by 50%
- Mentored junior developers and conducted code reviews
- Technologies: Python, Django, AWS, Docker, PostgreSQL

Software Engineer | StartupXYZ
June 2020 - December 2021
- Developed React-based frontend applications
- Built RESTful APIs using Node.js and Express
- Collaborated with design team to implement responsive UI components
- Technologies: React, Node.js, MongoDB, JavaScript

Education:
Bachelor of Science in Computer Science
University of California, Berkeley
Graduated: May 2020
GPA: 3.7/4.0
Relevant Coursework: Data Structures, Algorithms, Database Systems, Software Engineering

Projects:
E-commerce Platform
- Built full-stack e-commerce application with React and Django
- Implemented payment processing with Stripe integration
- Deployed on AWS with auto-scaling capabilities
- Technologies: React, Django, PostgreSQL, AWS, Docker

Certifications:
AWS Certified Solutions Architect - Associate | Amazon Web Services | 2023
Certified Kubernetes Administrator (CKA) | Cloud Native Computing Foundation | 2022

Languages:
English (Native), Spanish (Conversational)
`
