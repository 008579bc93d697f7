package score

// This file holds the canonical keyword tables. Earlier revisions carried
// several slightly different copies of these lists; the values below are the
// single consolidated set. Tables are read-only after process start.

// section is one expected resume section with its trigger keywords and points.
// Point values sum to exactly 100 across all sections.
type section struct {
	Name       string
	Keywords   []string
	Points     int
	Suggestion string
}

var sectionTable = []section{
	{Name: "summary", Keywords: []string{"summary", "objective"}, Points: 15, Suggestion: "Add a career objective or summary"},
	{Name: "education", Keywords: []string{"education", "school", "college"}, Points: 12, Suggestion: "Add your education details"},
	{Name: "experience", Keywords: []string{"experience", "work history"}, Points: 12, Suggestion: "Add your work experience"},
	{Name: "skills", Keywords: []string{"skill"}, Points: 12, Suggestion: "Add a skills section"},
	{Name: "projects", Keywords: []string{"project"}, Points: 12, Suggestion: "Add your projects"},
	{Name: "certifications", Keywords: []string{"certification", "certificate"}, Points: 15, Suggestion: "Add relevant certifications"},
	{Name: "achievements", Keywords: []string{"achievement", "award"}, Points: 10, Suggestion: "Add achievements or awards"},
	{Name: "internships", Keywords: []string{"internship"}, Points: 12, Suggestion: "Add internship experience"},
}

// domainEntry carries the weighted keyword lists for one domain. Strong
// signals score 3, weak signals score 1. Declaration order is the tie-break
// order for domain selection, so the slice order below is load-bearing.
type domainEntry struct {
	Name   string
	Strong []string
	Weak   []string
}

const (
	strongWeight = 3
	weakWeight   = 1
)

var domainTable = []domainEntry{
	{
		Name:   "Data Science",
		Strong: []string{"machine learning", "deep learning", "tensorflow", "pytorch", "data science"},
		Weak:   []string{"keras", "pandas", "numpy", "scikit-learn", "statistics", "nlp"},
	},
	{
		Name:   "Web Development",
		Strong: []string{"react", "django", "node js", "javascript", "php"},
		Weak:   []string{"laravel", "magento", "wordpress", "angular", "asp.net", "flask"},
	},
	{
		Name:   "Android Development",
		Strong: []string{"android", "kotlin", "flutter"},
		Weak:   []string{"jetpack compose", "play store", "kivy"},
	},
	{
		Name:   "iOS Development",
		Strong: []string{"ios", "swift", "xcode"},
		Weak:   []string{"cocoa touch", "objective-c", "storekit"},
	},
	{
		Name:   "UI/UX Design",
		Strong: []string{"figma", "adobe xd", "user experience"},
		Weak:   []string{"zeplin", "balsamiq", "prototyping", "wireframes", "photoshop", "illustrator"},
	},
	{
		Name:   "Telecommunications",
		Strong: []string{"5g", "lte", "ran", "volte"},
		Weak:   []string{"gsm", "umts", "ims", "telecom", "rf planning"},
	},
	{
		Name:   "Cloud & DevOps",
		Strong: []string{"kubernetes", "terraform", "docker"},
		Weak:   []string{"azure", "jenkins", "ansible", "helm", "ci/cd"},
	},
	{
		Name:   "Cybersecurity",
		// "security" appeared as both a strong and weak signal across old
		// revisions; the canonical table keeps it weak.
		Strong: []string{"penetration testing", "siem", "vulnerability"},
		Weak:   []string{"security", "firewall", "incident response", "iso 27001"},
	},
}

// employerBonus adds a fixed score to one domain when the employer name
// appears in the text. The list is closed; there is no pattern matching.
type employerBonus struct {
	Employer string
	Domain   string
	Bonus    int
}

var employerBonuses = []employerBonus{
	{Employer: "ericsson", Domain: "Telecommunications", Bonus: 6},
	{Employer: "nokia", Domain: "Telecommunications", Bonus: 6},
	{Employer: "qualcomm", Domain: "Telecommunications", Bonus: 4},
	{Employer: "huawei", Domain: "Telecommunications", Bonus: 4},
	{Employer: "crowdstrike", Domain: "Cybersecurity", Bonus: 4},
}

// atsKeywordTable lists the expected ATS keywords per domain, in report order.
var atsKeywordTable = map[string][]string{
	"Data Science":        {"python", "machine learning", "sql", "statistics", "data visualization", "model deployment"},
	"Web Development":     {"javascript", "html", "css", "rest api", "git", "responsive design"},
	"Android Development": {"kotlin", "android sdk", "material design", "play store", "gradle"},
	"iOS Development":     {"swift", "xcode", "uikit", "app store", "core data"},
	"UI/UX Design":        {"figma", "wireframes", "prototyping", "user research", "design systems"},
	"Telecommunications":  {"5g", "lte", "ran", "volte", "network optimization", "3gpp"},
	"Cloud & DevOps":      {"kubernetes", "docker", "terraform", "ci/cd", "monitoring", "linux"},
	"Cybersecurity":       {"siem", "penetration testing", "incident response", "firewall", "owasp"},
}

// baseRoleTable maps a domain to its base suggested job titles.
var baseRoleTable = map[string][]string{
	"Data Science":        {"Data Scientist", "Machine Learning Engineer", "Data Analyst"},
	"Web Development":     {"Full Stack Developer", "Frontend Developer", "Backend Developer"},
	"Android Development": {"Android Developer", "Mobile Application Developer"},
	"iOS Development":     {"iOS Developer", "Mobile Application Developer"},
	"UI/UX Design":        {"UX Designer", "Product Designer", "UI Designer"},
	"Telecommunications":  {"RAN Engineer", "Network Optimization Engineer", "Telecom Solutions Architect"},
	"Cloud & DevOps":      {"DevOps Engineer", "Site Reliability Engineer", "Cloud Engineer"},
	"Cybersecurity":       {"Security Analyst", "Security Engineer", "SOC Analyst"},
}

var seniorityKeywords = []string{"senior", "lead", "architect", "manager", "principal", "head of"}

var internshipKeywords = []string{"internship", "trainee"}

// SkillVocabulary is the fixed vocabulary used for keyword-substring skill
// detection when no structured parser output is available.
var SkillVocabulary = []string{
	"python", "java", "go", "c++", "c#", "sql", "javascript", "typescript",
	"react", "angular", "django", "flask", "node js", "php", "laravel",
	"machine learning", "deep learning", "tensorflow", "pytorch", "keras",
	"pandas", "numpy", "nlp",
	"android", "kotlin", "flutter", "ios", "swift", "xcode",
	"figma", "adobe xd", "photoshop", "illustrator",
	"5g", "lte", "ran", "volte",
	"kubernetes", "docker", "terraform", "jenkins", "ansible",
	"siem", "penetration testing", "firewall",
	"git", "linux", "rest api",
}

// DomainNames returns the domain names in declaration order.
func DomainNames() []string {
	names := make([]string, 0, len(domainTable))
	for _, d := range domainTable {
		names = append(names, d.Name)
	}
	return names
}

// DefaultDomain is the deterministic winner when every domain scores zero.
func DefaultDomain() string {
	return domainTable[0].Name
}
