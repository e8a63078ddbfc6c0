package database

import "portfolio/models"

// DefaultProjects returns the catalog stored on first boot, in display order.
// Each call returns a fresh slice so callers may modify it.
func DefaultProjects() []models.Project {
	return []models.Project{
		{
			Title:         "ConnectEd Digital Learning Platform Implementation",
			Description:   "Led comprehensive project management for Bridgewood Academy's digital transformation, coordinating stakeholders, timelines, and technology integration across multiple departments.",
			Category:      "Project Management",
			Tags:          []string{"Digital Transformation", "Stakeholder Management", "Technology Implementation"},
			Details:       "Managed end-to-end implementation of ConnectEd digital learning platform for Bridgewood Academy. Applied PRINCE2 and Agile methodologies to coordinate cross-functional teams including IT, academics, and administration. Key deliverables included stakeholder communication plans, risk assessment matrices, resource allocation frameworks, and change management strategies. Successfully delivered project on time and within budget, achieving 95% user adoption rate within first quarter. Project scope included LMS integration, teacher training programs, student onboarding processes, and performance monitoring systems.",
			Subject:       "Project Management & EdTech",
			Icon:          models.IconCalendar,
			BgColor:       "from-indigo-100 to-indigo-200",
			IconColor:     "text-indigo-600",
			CategoryColor: "bg-indigo-100 text-indigo-800",
		},
		{
			Title:         "Eli Lilly Digital Marketing Campaign Project",
			Description:   "Coordinated multi-channel digital marketing campaign for pharmaceutical company, managing timeline, budget, compliance requirements, and cross-functional team collaboration.",
			Category:      "Project Management",
			Tags:          []string{"Campaign Management", "Budget Control", "Compliance"},
			Details:       "Led project management for Eli Lilly's digital marketing campaign targeting healthcare professionals. Utilized MS Project and Asana for timeline management, coordinated with regulatory affairs, creative teams, and digital agencies. Managed £150K budget allocation across multiple channels including LinkedIn, medical journals, and conference sponsorships. Implemented rigorous compliance checks for pharmaceutical advertising regulations. Applied risk management frameworks to identify and mitigate potential regulatory, timeline, and budget risks. Delivered campaign 2 weeks ahead of schedule with 12% under budget.",
			Subject:       "Project Management & Marketing",
			Icon:          models.IconBriefcase,
			BgColor:       "from-cyan-100 to-cyan-200",
			IconColor:     "text-cyan-600",
			CategoryColor: "bg-cyan-100 text-cyan-800",
		},
		{
			Title:         "Strategic Leadership Development Framework",
			Description:   "Comprehensive leadership development plan for international organizations using Tesco case study, incorporating cultural intelligence and strategic skills assessment.",
			Category:      "Strategic Leadership",
			Tags:          []string{"Leadership Development", "Cultural Intelligence", "Strategic Planning"},
			Details:       "Developed a comprehensive strategic leadership development framework for Tesco's international operations. The project included STEEPV analysis (Social, Technological, Economic, Environmental, Political, Values factors), stakeholder mapping, and identification of key leadership competencies required for global expansion. Focus areas included cultural intelligence, digital transformation leadership, ethical decision-making, and change management capabilities. The framework addressed the dual tension between global strategy and local implementation, providing practical development pathways for leaders operating across diverse markets and cultures.",
			Subject:       "Strategic Management & Leadership",
			Icon:          models.IconRocket,
			BgColor:       "from-blue-100 to-blue-200",
			IconColor:     "text-blue-600",
			CategoryColor: "bg-blue-100 text-blue-800",
		},
		{
			Title:         "Amazon Leadership & Management Analysis",
			Description:   "Critical evaluation of Amazon's leadership practices using transformational, transactional, and situational leadership theories with mixed-methods research approach.",
			Category:      "Leadership Research",
			Tags:          []string{"Mixed Methods Research", "Leadership Theory", "Organizational Analysis"},
			Details:       "Conducted comprehensive research on Amazon's leadership effectiveness using both quantitative and qualitative methodologies. Applied the Multifactor Leadership Questionnaire (MLQ) for statistical analysis and semi-structured interviews for deeper insights. The study examined transformational leadership impact on innovation, transactional leadership effects on performance metrics, and situational leadership adaptation across different Amazon divisions (AWS, fulfillment centers). Research included analysis of cultural differences, employee engagement factors, and the balance between performance-driven culture and employee wellbeing in global operations.",
			Subject:       "Research Methods & Leadership",
			Icon:          models.IconGem,
			BgColor:       "from-purple-100 to-purple-200",
			IconColor:     "text-purple-600",
			CategoryColor: "bg-purple-100 text-purple-800",
		},
		{
			Title:         "Karelia Tobacco Strategic Communication Plan",
			Description:   "Strategic communication framework analyzing media influence, stakeholder management, and crisis communication for international tobacco company operations.",
			Category:      "Strategic Communication",
			Tags:          []string{"Media Strategy", "Stakeholder Management", "Crisis Communication"},
			Details:       "Developed a comprehensive strategic communication plan for Karelia Tobacco Company, analyzing domestic, national, and international media perceptions. The project examined the influence of pressure groups, political entities, and media ownership on public perception and policy development. Created innovative communication strategies to navigate complex regulatory environments while maintaining stakeholder relationships. The analysis included evaluation of media constraints, time-critical communication requirements, and methods for leveraging global news media to support organizational objectives despite challenging industry dynamics.",
			Subject:       "Strategic Communication",
			Icon:          models.IconRoute,
			BgColor:       "from-amber-100 to-amber-200",
			IconColor:     "text-amber-600",
			CategoryColor: "bg-amber-100 text-amber-800",
		},
		{
			Title:         "Unilever Cross-Border Strategy Development",
			Description:   "Analysis of collective strategy formation, cultural-ethical tensions, and strategic intelligence application in global consumer goods operations.",
			Category:      "Global Strategy",
			Tags:          []string{"Cross-Border Strategy", "Cultural Analysis", "Strategic Intelligence"},
			Details:       "Comprehensive analysis of Unilever's cross-border strategy development, focusing on collective strategy formation across diverse markets. The project examined political, social, ethical, and operational needs for common strategy implementation while addressing cultural and ethical tensions. Applied quantitative and qualitative research principles to understand consumer behavior across different regions. Evaluated strategic intelligence gathering and analysis methods, contributing original thinking to strategy formulation through innovative approaches to market adaptation and cultural sensitivity in global operations.",
			Subject:       "Strategy Development",
			Icon:          models.IconLeaf,
			BgColor:       "from-emerald-100 to-emerald-200",
			IconColor:     "text-emerald-600",
			CategoryColor: "bg-emerald-100 text-emerald-800",
		},
		{
			Title:         "M&S Culture & Strategy Impact Analysis",
			Description:   "Deep analysis of cultural factors influencing international organizational strategy, including political structures, ethnographic factors, and stakeholder dynamics.",
			Category:      "Cultural Strategy",
			Tags:          []string{"Cultural Analysis", "International Strategy", "Stakeholder Management"},
			Details:       "Conducted comprehensive analysis of how culture impacts Marks & Spencer's international organizational strategy. Applied frameworks including Hofstede's cultural dimensions, CAGE analysis, PESTLE analysis, and Porter's models to understand the influence of political structures, religious factors, cultural norms, and ethnographic elements on strategic decision-making. Examined the role of globalization, business models, and institutional theory in policy development. The project provided insights into managing cultural differences, optimizing stakeholder relationships, and developing strategies that balance global consistency with local adaptation.",
			Subject:       "Culture & Strategy",
			Icon:          models.IconGraduationCap,
			BgColor:       "from-green-100 to-green-200",
			IconColor:     "text-green-600",
			CategoryColor: "bg-green-100 text-green-800",
		},
		{
			Title:         "Tesco Cross-Border Strategic Planning",
			Description:   "Strategic planning framework for global retail operations, including risk management, cultural constraints, and international market analysis.",
			Category:      "Strategic Planning",
			Tags:          []string{"International Planning", "Risk Management", "Market Analysis"},
			Details:       "Developed comprehensive strategic planning framework for Tesco's cross-border operations, analyzing constraints and opportunities in global retail markets. The project examined cultural, political, and social constraints affecting international expansion, evaluated contributions from participating organizations and partnerships. Applied strategic intelligence methodologies for market analysis and competitor assessment. Created innovative risk management approaches and funding strategies for unexpected operational activities. The framework addressed the balance between centralized strategy and local market adaptation in diverse international contexts.",
			Subject:       "Strategic Planning",
			Icon:          models.IconShield,
			BgColor:       "from-red-100 to-red-200",
			IconColor:     "text-red-600",
			CategoryColor: "bg-red-100 text-red-800",
		},
	}
}
