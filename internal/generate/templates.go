package generate

import "github.com/ibudubuduu/Smart-Task-Planner/internal/plan"

// deadlineRule computes a task deadline as an offset in days from the plan
// start. Offsets are floored so short timeframes keep a minimum spacing,
// and capped at the total duration so no deadline leaves the timeline.
type deadlineRule struct {
	floor int     // minimum day offset
	div   int     // offset = totalDays / div when frac is zero
	frac  float64 // offset = int(totalDays * frac) when set
	final bool    // deadline is exactly the end date
}

func (r deadlineRule) offset(totalDays int) int {
	if r.final {
		return totalDays
	}
	days := 0
	switch {
	case r.frac > 0:
		days = int(float64(totalDays) * r.frac)
	case r.div > 0:
		days = totalDays / r.div
	}
	if days < r.floor {
		days = r.floor
	}
	if days > totalDays {
		days = totalDays
	}
	return days
}

// taskTemplate is one entry in a family template. Titles and descriptions
// may carry {subject} or {goal} placeholders filled at synthesis time.
// Dependencies reference 1-based positions of earlier entries in the
// same template.
type taskTemplate struct {
	title       string
	description string
	hours       int
	deps        []int
	priority    string
	category    string
	deadline    deadlineRule
}

var familyTemplates = map[Family][]taskTemplate{
	FamilyProduct: {
		{
			title:       "Market Research & User Analysis",
			description: "Conduct comprehensive market research to identify target audience, analyze competitors, and validate product-market fit. Gather user requirements and pain points.",
			hours:       16,
			deps:        []int{},
			priority:    plan.PriorityHigh,
			category:    "Research",
			deadline:    deadlineRule{floor: 1, div: 7},
		},
		{
			title:       "Product Requirements Documentation",
			description: "Create detailed product requirements document (PRD) including features, user stories, acceptance criteria, and technical specifications. Define MVP scope.",
			hours:       20,
			deps:        []int{1},
			priority:    plan.PriorityHigh,
			category:    "Planning",
			deadline:    deadlineRule{floor: 2, div: 5},
		},
		{
			title:       "UI/UX Design & Prototyping",
			description: "Design user interface mockups, create wireframes, develop interactive prototypes, and establish design system. Include user flow diagrams and navigation structure.",
			hours:       32,
			deps:        []int{2},
			priority:    plan.PriorityHigh,
			category:    "Design",
			deadline:    deadlineRule{floor: 4, div: 3},
		},
		{
			title:       "Backend Development & API Implementation",
			description: "Develop server-side logic, create RESTful APIs, implement database schema, set up authentication, and configure cloud infrastructure. Include error handling and logging.",
			hours:       40,
			deps:        []int{2},
			priority:    plan.PriorityHigh,
			category:    "Development",
			deadline:    deadlineRule{floor: 7, frac: 0.6},
		},
		{
			title:       "Frontend Development & Integration",
			description: "Build mobile app interface, implement screens from designs, integrate with backend APIs, handle state management, and optimize performance.",
			hours:       48,
			deps:        []int{3, 4},
			priority:    plan.PriorityHigh,
			category:    "Development",
			deadline:    deadlineRule{floor: 10, frac: 0.7},
		},
		{
			title:       "Testing & Quality Assurance",
			description: "Execute comprehensive testing including unit tests, integration tests, UI tests, performance testing, and security audits. Fix identified bugs and optimize code.",
			hours:       24,
			deps:        []int{5},
			priority:    plan.PriorityHigh,
			category:    "Testing",
			deadline:    deadlineRule{floor: 13, frac: 0.85},
		},
		{
			title:       "App Store Preparation & Submission",
			description: "Prepare app store listings, create screenshots and promotional materials, write descriptions, configure store settings, and submit for review.",
			hours:       12,
			deps:        []int{6},
			priority:    plan.PriorityMedium,
			category:    "Publishing",
			deadline:    deadlineRule{floor: 15, frac: 0.9},
		},
		{
			title:       "Marketing Campaign & Launch",
			description: "Execute marketing strategy, coordinate social media campaigns, send press releases, engage with early users, and monitor initial user feedback and analytics.",
			hours:       16,
			deps:        []int{7},
			priority:    plan.PriorityHigh,
			category:    "Marketing",
			deadline:    deadlineRule{final: true},
		},
	},
	FamilyEvent: {
		{
			title:       "Event Concept & Planning",
			description: "Define event objectives, determine target audience, establish theme and format, create preliminary budget, and develop overall event strategy.",
			hours:       8,
			deps:        []int{},
			priority:    plan.PriorityHigh,
			category:    "Planning",
			deadline:    deadlineRule{floor: 1, div: 6},
		},
		{
			title:       "Venue Selection & Booking",
			description: "Research suitable venues, conduct site visits, evaluate capacity and amenities, negotiate contracts, and secure venue booking with required deposits.",
			hours:       12,
			deps:        []int{1},
			priority:    plan.PriorityHigh,
			category:    "Logistics",
			deadline:    deadlineRule{floor: 2, div: 4},
		},
		{
			title:       "Vendor Coordination & Services",
			description: "Source and book catering services, arrange AV equipment, hire photographers, coordinate with decorators, and confirm all service provider contracts.",
			hours:       16,
			deps:        []int{2},
			priority:    plan.PriorityHigh,
			category:    "Logistics",
			deadline:    deadlineRule{floor: 4, div: 2},
		},
		{
			title:       "Guest Management & Invitations",
			description: "Compile guest list, design and send invitations (digital/physical), track RSVPs, manage dietary requirements, and arrange seating plan.",
			hours:       10,
			deps:        []int{1},
			priority:    plan.PriorityMedium,
			category:    "Communications",
			deadline:    deadlineRule{floor: 3, frac: 0.4},
		},
		{
			title:       "Event Program & Schedule",
			description: "Create detailed event timeline, coordinate speakers or performers, prepare scripts or run sheets, and conduct final walkthroughs with all stakeholders.",
			hours:       8,
			deps:        []int{2, 3},
			priority:    plan.PriorityHigh,
			category:    "Planning",
			deadline:    deadlineRule{floor: 6, frac: 0.75},
		},
		{
			title:       "Event Execution & Management",
			description: "Oversee event setup, coordinate all vendors and staff, manage timeline execution, handle real-time issues, and ensure smooth event flow from start to finish.",
			hours:       12,
			deps:        []int{3, 4, 5},
			priority:    plan.PriorityHigh,
			category:    "Execution",
			deadline:    deadlineRule{final: true},
		},
	},
	FamilyLearning: {
		{
			title:       "Foundation & Environment Setup for {subject}",
			description: "Install necessary software and tools, set up development environment, learn basic syntax and core concepts of {subject}, and complete beginner tutorials.",
			hours:       12,
			deps:        []int{},
			priority:    plan.PriorityHigh,
			category:    "Learning",
			deadline:    deadlineRule{floor: 2, div: 5},
		},
		{
			title:       "Intermediate Concepts & Hands-on Practice",
			description: "Study intermediate {subject} concepts through structured courses, complete coding exercises and challenges, build small practice projects, and participate in coding communities.",
			hours:       24,
			deps:        []int{1},
			priority:    plan.PriorityHigh,
			category:    "Learning",
			deadline:    deadlineRule{floor: 6, frac: 0.6},
		},
		{
			title:       "Advanced Topics & Real-world Applications",
			description: "Explore advanced {subject} topics including best practices, design patterns, optimization techniques. Work on complex problems and study real-world code examples.",
			hours:       20,
			deps:        []int{2},
			priority:    plan.PriorityMedium,
			category:    "Practice",
			deadline:    deadlineRule{floor: 10, frac: 0.8},
		},
		{
			title:       "Capstone Project & Portfolio Development",
			description: "Design and build a comprehensive {subject} project demonstrating learned skills. Document code, create README, deploy project, and add to professional portfolio.",
			hours:       16,
			deps:        []int{3},
			priority:    plan.PriorityHigh,
			category:    "Portfolio",
			deadline:    deadlineRule{final: true},
		},
	},
	FamilyResearch: {
		{
			title:       "Topic Selection & Literature Review",
			description: "Define research question, conduct comprehensive literature review, identify gaps in existing research, and develop theoretical framework. Compile annotated bibliography.",
			hours:       20,
			deps:        []int{},
			priority:    plan.PriorityHigh,
			category:    "Research",
			deadline:    deadlineRule{floor: 2, div: 4},
		},
		{
			title:       "Research Methodology Design",
			description: "Develop research methodology, design data collection instruments, establish sampling strategy, and prepare ethics approval documentation if required.",
			hours:       12,
			deps:        []int{1},
			priority:    plan.PriorityHigh,
			category:    "Planning",
			deadline:    deadlineRule{floor: 4, div: 3},
		},
		{
			title:       "Data Collection & Analysis",
			description: "Execute data collection according to methodology, organize and clean data, perform statistical analysis, generate visualizations, and interpret results.",
			hours:       24,
			deps:        []int{2},
			priority:    plan.PriorityHigh,
			category:    "Research",
			deadline:    deadlineRule{floor: 8, frac: 0.65},
		},
		{
			title:       "Writing & Documentation",
			description: "Write research paper sections (introduction, methodology, results, discussion, conclusion), create tables and figures, ensure proper citations, and format according to requirements.",
			hours:       20,
			deps:        []int{3},
			priority:    plan.PriorityHigh,
			category:    "Writing",
			deadline:    deadlineRule{floor: 11, frac: 0.85},
		},
		{
			title:       "Review, Revision & Submission",
			description: "Proofread paper, incorporate peer feedback, verify citations and references, check formatting compliance, and submit final version before deadline.",
			hours:       12,
			deps:        []int{4},
			priority:    plan.PriorityHigh,
			category:    "Finalization",
			deadline:    deadlineRule{final: true},
		},
	},
}

// phaseTemplate is one entry of the generic fallback family. Indices past
// the last entry reuse it.
type phaseTemplate struct {
	name        string
	description string
	category    string
}

var genericPhases = []phaseTemplate{
	{
		name:        "Planning & Requirements",
		description: "Define objectives, gather requirements, identify stakeholders, create project plan, and establish success criteria for: {goal}",
		category:    "Planning",
	},
	{
		name:        "Research & Preparation",
		description: "Conduct necessary research, gather resources, identify potential challenges, and prepare detailed approach for executing: {goal}",
		category:    "Research",
	},
	{
		name:        "Implementation Phase 1",
		description: "Begin core execution activities, establish foundations, implement initial components, and validate approach for: {goal}",
		category:    "Development",
	},
	{
		name:        "Implementation Phase 2",
		description: "Continue development work, integrate components, address identified issues, and complete majority of work for: {goal}",
		category:    "Development",
	},
	{
		name:        "Testing & Quality Assurance",
		description: "Conduct thorough testing, verify all requirements are met, identify and fix issues, and ensure quality standards for: {goal}",
		category:    "Testing",
	},
	{
		name:        "Finalization & Documentation",
		description: "Complete remaining tasks, create necessary documentation, prepare deliverables, and finalize all aspects of: {goal}",
		category:    "Finalization",
	},
	{
		name:        "Delivery & Completion",
		description: "Deliver final output, gather feedback, ensure stakeholder satisfaction, and officially close project for: {goal}",
		category:    "Completion",
	},
}

var genericPriorities = []string{
	plan.PriorityHigh,
	plan.PriorityHigh,
	plan.PriorityMedium,
	plan.PriorityHigh,
	plan.PriorityHigh,
	plan.PriorityMedium,
	plan.PriorityHigh,
}
