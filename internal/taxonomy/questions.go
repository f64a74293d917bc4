package taxonomy

import "github.com/Apshaya/RES-Checker/internal/types"

// QuestionBank is the fixed interview question bank, tagged by category,
// difficulty and related skills. Order matters: question gathering walks the
// bank front to back.
var QuestionBank = []types.Question{
	// Frontend
	{Text: "What is the difference between let, const and var in JavaScript?", Category: "Frontend Development", Difficulty: "easy", Skills: []string{"JavaScript"}},
	{Text: "Explain the virtual DOM and how React uses it to minimize re-renders.", Category: "Frontend Development", Difficulty: "medium", Skills: []string{"React", "JavaScript"}},
	{Text: "How does the browser event loop schedule microtasks and macrotasks?", Category: "Frontend Development", Difficulty: "hard", Skills: []string{"JavaScript"}},
	{Text: "When would you reach for CSS Grid over Flexbox?", Category: "Frontend Development", Difficulty: "easy", Skills: []string{"CSS", "HTML"}},
	{Text: "How do you type a generic React component in TypeScript?", Category: "Frontend Development", Difficulty: "medium", Skills: []string{"TypeScript", "React"}},
	{Text: "Walk through how you would profile and fix a slow-rendering component tree.", Category: "Frontend Development", Difficulty: "hard", Skills: []string{"React", "JavaScript"}},

	// Backend
	{Text: "What is the difference between PUT and PATCH in a REST API?", Category: "Backend Development", Difficulty: "easy", Skills: []string{"REST API"}},
	{Text: "How does Node.js handle concurrent requests on a single thread?", Category: "Backend Development", Difficulty: "medium", Skills: []string{"Node.js"}},
	{Text: "Design an idempotent payment endpoint that tolerates client retries.", Category: "Backend Development", Difficulty: "hard", Skills: []string{"REST API", "Microservices"}},
	{Text: "What problems does GraphQL solve compared to REST, and what new ones does it introduce?", Category: "Backend Development", Difficulty: "medium", Skills: []string{"GraphQL", "REST API"}},
	{Text: "How do goroutines differ from OS threads?", Category: "Backend Development", Difficulty: "medium", Skills: []string{"Go"}},
	{Text: "How would you split a monolith into microservices without a big-bang rewrite?", Category: "Backend Development", Difficulty: "hard", Skills: []string{"Microservices"}},

	// Databases
	{Text: "What is a primary key and why does every table want one?", Category: "Databases", Difficulty: "easy", Skills: []string{"SQL"}},
	{Text: "When would you denormalize a relational schema?", Category: "Databases", Difficulty: "medium", Skills: []string{"SQL", "PostgreSQL"}},
	{Text: "Explain how a B-tree index speeds up range queries and when it does not help.", Category: "Databases", Difficulty: "hard", Skills: []string{"SQL", "MySQL", "PostgreSQL"}},
	{Text: "Compare MongoDB's document model with a relational model for an order system.", Category: "Databases", Difficulty: "medium", Skills: []string{"MongoDB", "SQL"}},
	{Text: "What is Redis typically used for alongside a primary database?", Category: "Databases", Difficulty: "easy", Skills: []string{"Redis"}},

	// Cloud & DevOps
	{Text: "What is the difference between a Docker image and a container?", Category: "Cloud & DevOps", Difficulty: "easy", Skills: []string{"Docker"}},
	{Text: "How does Kubernetes decide which node to schedule a pod on?", Category: "Cloud & DevOps", Difficulty: "medium", Skills: []string{"Kubernetes"}},
	{Text: "Design a zero-downtime deployment pipeline for a stateful service.", Category: "Cloud & DevOps", Difficulty: "hard", Skills: []string{"Kubernetes", "CI/CD", "Docker"}},
	{Text: "What does 'infrastructure as code' buy you over manual provisioning?", Category: "Cloud & DevOps", Difficulty: "easy", Skills: []string{"Terraform", "AWS"}},
	{Text: "How would you structure Terraform state for a multi-environment setup?", Category: "Cloud & DevOps", Difficulty: "hard", Skills: []string{"Terraform", "AWS"}},
	{Text: "Describe your branching and merge strategy for a team of ten using Git.", Category: "Cloud & DevOps", Difficulty: "medium", Skills: []string{"Git", "CI/CD"}},

	// Data & ML
	{Text: "What is the difference between a list and a tuple in Python?", Category: "Data & Machine Learning", Difficulty: "easy", Skills: []string{"Python"}},
	{Text: "How do you handle missing values in a Pandas DataFrame?", Category: "Data & Machine Learning", Difficulty: "easy", Skills: []string{"Pandas", "Python"}},
	{Text: "Explain the bias-variance tradeoff with a concrete example.", Category: "Data & Machine Learning", Difficulty: "medium", Skills: []string{"Machine Learning"}},
	{Text: "How would you detect and mitigate overfitting in a deep neural network?", Category: "Data & Machine Learning", Difficulty: "hard", Skills: []string{"Deep Learning", "TensorFlow", "PyTorch"}},
	{Text: "Design a feature pipeline that keeps training and serving consistent.", Category: "Data & Machine Learning", Difficulty: "hard", Skills: []string{"Machine Learning", "Spark", "Python"}},

	// Mobile
	{Text: "What is the difference between a value type and a reference type in Swift?", Category: "Mobile Development", Difficulty: "easy", Skills: []string{"Swift", "iOS"}},
	{Text: "How does React Native bridge JavaScript and native code?", Category: "Mobile Development", Difficulty: "medium", Skills: []string{"React Native", "JavaScript"}},
	{Text: "How would you architect offline-first sync for a mobile app?", Category: "Mobile Development", Difficulty: "hard", Skills: []string{"Android", "iOS", "Flutter"}},

	// Testing
	{Text: "What makes a unit test different from an integration test?", Category: "Testing & Quality", Difficulty: "easy", Skills: []string{"Unit Testing"}},
	{Text: "How do you test asynchronous code with Jest?", Category: "Testing & Quality", Difficulty: "medium", Skills: []string{"Jest", "JavaScript"}},
	{Text: "How would you keep an end-to-end Selenium suite fast and non-flaky?", Category: "Testing & Quality", Difficulty: "hard", Skills: []string{"Selenium", "Cypress"}},

	// Soft skills
	{Text: "Tell me about a time you disagreed with a teammate on a technical decision.", Category: "Soft Skills", Difficulty: "easy", Skills: []string{"Communication", "Teamwork"}},
	{Text: "How do you break down a vague product requirement into deliverable work?", Category: "Soft Skills", Difficulty: "medium", Skills: []string{"Problem Solving", "Project Management", "Agile"}},
	{Text: "Describe a project you led that was failing and how you turned it around.", Category: "Soft Skills", Difficulty: "hard", Skills: []string{"Leadership", "Project Management"}},
}
