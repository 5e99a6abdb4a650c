package utils

// Embedded sample content served when no dataset file matches a course.
// Rows mirror the dataset schema: module_id, module_name, topic_title,
// content_summary, code_example, difficulty.

var fallbackContentMap = map[string][]map[string]any{
	"advanced_react_patterns": {
		{
			"module_id":       1,
			"module_name":     "Advanced React Patterns",
			"topic_title":     "Compound Components",
			"content_summary": "Allows multiple components to work together as a cohesive unit; useful for flexible APIs.",
			"code_example":    "function Toggle({children}) { const [on,setOn] = React.useState(false); return React.Children.map(children, child => React.cloneElement(child, {on, toggle: () => setOn(!on)})); }",
			"difficulty":      "Advanced",
		},
		{
			"module_id":       2,
			"module_name":     "Advanced React Patterns",
			"topic_title":     "Custom Hooks",
			"content_summary": "Encapsulate reusable stateful logic to share across components.",
			"code_example":    "function useToggle(initial=false) { const [on,setOn] = React.useState(initial); const toggle = () => setOn(o => !o); return {on, toggle}; }",
			"difficulty":      "Intermediate",
		},
	},
	"aws_developer": {
		{
			"module_id":       1,
			"module_name":     "AWS Developer Path",
			"topic_title":     "Intro to AWS & IAM",
			"content_summary": "Overview of AWS core services and Identity & Access Management basics.",
			"code_example":    "aws iam create-user --user-name demo-user",
			"difficulty":      "Beginner",
		},
		{
			"module_id":       2,
			"module_name":     "AWS Developer Path",
			"topic_title":     "Lambda & Serverless",
			"content_summary": "Build serverless functions and deploy with SAM or Serverless Framework.",
			"code_example":    "aws lambda create-function --function-name myFn --runtime python3.11 ...",
			"difficulty":      "Intermediate",
		},
	},
	"data_structures_algorithms": {
		{
			"module_id":       1,
			"module_name":     "DSA Fundamentals",
			"topic_title":     "Arrays & Strings",
			"content_summary": "Basics of array and string manipulation and common techniques.",
			"code_example":    "function reverseString(s) { return s.split('').reverse().join(''); }",
			"difficulty":      "Beginner",
		},
	},
	"typescript_deep_dive": {
		{
			"module_id":       1,
			"module_name":     "TypeScript Deep Dive",
			"topic_title":     "Types & Interfaces",
			"content_summary": "Understanding types, interfaces, unions and generics in TypeScript.",
			"code_example":    "type User = { id: number; name: string }; function greet(u: User){ console.log(u.name); }",
			"difficulty":      "Intermediate",
		},
	},
}

// RecommendedCourses maps a learning-style category to course slugs
// suggested for that style.
var RecommendedCourses = map[string][]string{
	"Short":     {"advanced_react_patterns"},
	"Elaborate": {"typescript_deep_dive", "machine_learning_basics"},
	"Realistic": {"aws_developer", "hands_on_projects"},
}

// FallbackContent returns the embedded modules for a course, trying the
// normalized slug key first and then the raw identifier. Rows are
// copied so callers can filter freely.
func FallbackContent(courseName string) ([]map[string]any, bool) {
	rows, ok := fallbackContentMap[SlugKey(courseName)]
	if !ok {
		rows, ok = fallbackContentMap[courseName]
	}
	if !ok {
		return nil, false
	}
	out := make([]map[string]any, len(rows))
	for i, row := range rows {
		cp := make(map[string]any, len(row))
		for k, v := range row {
			cp[k] = v
		}
		out[i] = cp
	}
	return out, true
}
