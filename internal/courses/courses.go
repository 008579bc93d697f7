// Package courses serves static course recommendations per domain.
package courses

// Course is one recommended course with its link.
type Course struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

// DefaultLimit is how many courses Recommend returns when the caller does not
// ask for a specific count.
const DefaultLimit = 5

// catalog maps domain names (as produced by the domain classifier) to course
// lists in recommendation order. Selection is deterministic: the first n
// entries, no shuffling.
var catalog = map[string][]Course{
	"Data Science": {
		{Name: "Machine Learning Crash Course by Google", Link: "https://developers.google.com/machine-learning/crash-course"},
		{Name: "Machine Learning A-Z by Udemy", Link: "https://www.udemy.com/course/machinelearning/"},
		{Name: "Machine Learning by Andrew NG", Link: "https://www.coursera.org/learn/machine-learning"},
		{Name: "Data Scientist Master Program of Simplilearn (IBM)", Link: "https://www.simplilearn.com/big-data-and-analytics/senior-data-scientist-masters-program-training"},
		{Name: "Data Science Foundations: Fundamentals by LinkedIn", Link: "https://www.linkedin.com/learning/data-science-foundations-fundamentals-5"},
		{Name: "Data Scientist with Python", Link: "https://www.datacamp.com/tracks/data-scientist-with-python"},
	},
	"Web Development": {
		{Name: "Django Crash course [Free]", Link: "https://youtu.be/e1IyzVyrLSU"},
		{Name: "Python and Django Full Stack Web Developer Bootcamp", Link: "https://www.udemy.com/course/python-and-django-full-stack-web-developer-bootcamp"},
		{Name: "React Crash Course [Free]", Link: "https://youtu.be/Dorf8i6lCuk"},
		{Name: "ReactJS Project Development Training", Link: "https://www.dotnettricks.com/training/masters-program/reactjs-certification-training"},
		{Name: "Full Stack Web Developer - MEAN Stack", Link: "https://www.simplilearn.com/full-stack-web-developer-mean-stack-certification-training"},
		{Name: "Full Stack Web Developer by Udacity", Link: "https://www.udacity.com/course/full-stack-web-developer-nanodegree--nd0044"},
	},
	"Android Development": {
		{Name: "Android Development for Beginners [Free]", Link: "https://youtu.be/fis26HvvDII"},
		{Name: "Android App Development Specialization", Link: "https://www.coursera.org/specializations/android-app-development"},
		{Name: "Associate Android Developer Certification", Link: "https://grow.google/androiddev/#?modal_active=none"},
		{Name: "Become an Android Kotlin Developer by Udacity", Link: "https://www.udacity.com/course/android-kotlin-developer-nanodegree--nd940"},
		{Name: "Flutter - The Complete Development Course", Link: "https://www.udemy.com/course/flutter-bootcamp-with-dart/"},
	},
	"iOS Development": {
		{Name: "IOS App Development by LinkedIn", Link: "https://www.linkedin.com/learning/subscription/topics/ios"},
		{Name: "iOS & Swift - The Complete iOS App Development Bootcamp", Link: "https://www.udemy.com/course/ios-13-app-development-bootcamp/"},
		{Name: "Become an iOS Developer", Link: "https://www.udacity.com/course/ios-developer-nanodegree--nd003"},
		{Name: "iOS App Development with Swift Specialization", Link: "https://www.coursera.org/specializations/app-development"},
		{Name: "Objective-C Crash Course for Swift Developers", Link: "https://www.udemy.com/course/objectivec/"},
	},
	"UI/UX Design": {
		{Name: "Google UX Design Professional Certificate", Link: "https://www.coursera.org/professional-certificates/google-ux-design"},
		{Name: "UI / UX Design Specialization", Link: "https://www.coursera.org/specializations/ui-ux-design"},
		{Name: "The Complete App Design Course - UX, UI and Design Thinking", Link: "https://www.udemy.com/course/the-complete-app-design-course-ux-and-ui-design/"},
		{Name: "UX & Web Design Master Course: Strategy, Design, Development", Link: "https://www.udemy.com/course/ux-web-design-master-course-strategy-design-development/"},
		{Name: "DESIGN RULES: Principles + Practices for Great UI Design", Link: "https://www.udemy.com/course/design-rules/"},
	},
	"Telecommunications": {
		{Name: "5G for Everyone by Qualcomm", Link: "https://www.coursera.org/learn/5g-for-everyone"},
		{Name: "4G Network Fundamentals", Link: "https://www.coursera.org/learn/4g-network-fundamentals"},
		{Name: "Wireless Communications for Everybody", Link: "https://www.coursera.org/learn/wireless-communications"},
		{Name: "LTE and 5G Air Interface Deep Dive", Link: "https://www.udemy.com/course/lte-advanced-pro-and-the-road-to-5g/"},
	},
	"Cloud & DevOps": {
		{Name: "DevOps on AWS Specialization", Link: "https://www.coursera.org/specializations/aws-devops"},
		{Name: "Certified Kubernetes Administrator (CKA) Prep", Link: "https://www.udemy.com/course/certified-kubernetes-administrator-with-practice-tests/"},
		{Name: "Terraform on Azure and AWS", Link: "https://www.udemy.com/course/terraform-beginner-to-advanced/"},
		{Name: "Google Cloud DevOps Engineer Path", Link: "https://www.cloudskillsboost.google/paths/20"},
	},
	"Cybersecurity": {
		{Name: "Google Cybersecurity Professional Certificate", Link: "https://www.coursera.org/professional-certificates/google-cybersecurity"},
		{Name: "The Complete Cyber Security Course: Hackers Exposed!", Link: "https://www.udemy.com/course/the-complete-internet-security-privacy-course-volume-1/"},
		{Name: "IBM Cybersecurity Analyst", Link: "https://www.coursera.org/professional-certificates/ibm-cybersecurity-analyst"},
		{Name: "Practical Ethical Hacking - The Complete Course", Link: "https://www.udemy.com/course/practical-ethical-hacking/"},
	},
}

// Recommend returns up to n courses for the domain in catalog order. Unknown
// domains return an empty list; n <= 0 falls back to DefaultLimit.
func Recommend(domain string, n int) []Course {
	list, ok := catalog[domain]
	if !ok {
		return []Course{}
	}
	if n <= 0 {
		n = DefaultLimit
	}
	if n > len(list) {
		n = len(list)
	}
	out := make([]Course, n)
	copy(out, list[:n])
	return out
}

// Domains returns every domain with a course list. Order is unspecified.
func Domains() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	return names
}
