package content

import "fmt"

// DefaultBoards are offered for every class.
var DefaultBoards = []string{"CBSE", "ICSE", "Madhyamik"}

// DefaultCatalog returns the built-in catalog served when no API or
// catalog file is available. Each call returns a fresh copy.
func DefaultCatalog() Catalog {
	classes := make([]Class, 0, 3)
	for i, num := range []int{10, 11, 12} {
		classes = append(classes, Class{
			ID:          i + 1,
			Name:        fmt.Sprintf("Class %d", num),
			Image:       "/placeholder.jpg",
			Description: fmt.Sprintf("Comprehensive study materials for students in Class %d", num),
		})
	}

	return Catalog{
		Classes: classes,
		Boards:  append([]string(nil), DefaultBoards...),
		Subjects: []Subject{
			{ID: 1, Name: "Physics", Icon: "⚛️", Description: "Learn about the fundamental principles governing the natural world"},
			{ID: 2, Name: "Chemistry", Icon: "🧪", Description: "Explore the composition, structure, and properties of matter"},
			{ID: 3, Name: "Biology", Icon: "🧬", Description: "Study of living organisms and their interactions with the environment"},
			{ID: 4, Name: "Mathematics", Icon: "📐", Description: "Develop problem-solving skills and logical reasoning"},
			{ID: 5, Name: "Computer Science", Icon: "💻", Description: "Learn programming and computational thinking"},
		},
		Notes: defaultNotes(),
		NotesURLs: map[string]map[string]string{
			"10": {"CBSE": "www.class10cbse.com", "ICSE": "www.class10icse.com", "MADHYAMIK": "www.class10madhyamik.com"},
			"11": {"CBSE": "www.class11cbse.com", "ICSE": "www.class11icse.com", "MADHYAMIK": "www.class11madhyamik.com"},
			"12": {"CBSE": "www.class12cbse.co", "ICSE": "www.class12icse.com", "MADHYAMIK": "www.class12madhyamik.com"},
		},
		Achievements: []Achievement{
			{ID: 1, Icon: "trophy", Title: "100% Pass Rate", Description: "All our students have successfully passed their board exams"},
			{ID: 2, Icon: "medal", Title: "Top Scorers", Description: "Multiple students scored above 90% in Science and Mathematics"},
			{ID: 3, Icon: "award", Title: "Competitive Exam Success", Description: "Students from our institute regularly qualify for JEE and NEET"},
		},
		Testimonials: []Testimonial{
			{
				ID: 1, Name: "Arjun Singh", Class: "Class 12", Board: "CBSE",
				Testimonial: "Atom Institute helped me achieve 95% in my board exams. The teachers are very dedicated and the study materials are comprehensive.",
				Image:       "/placeholder-user.jpg",
			},
			{
				ID: 2, Name: "Priya Sharma", Class: "Class 10", Board: "ICSE",
				Testimonial: "I was struggling with Physics until I joined Atom Institute. The concepts are explained so clearly that I scored 92% in my final exams.",
				Image:       "/placeholder-user.jpg",
			},
			{
				ID: 3, Name: "Rahul Gupta", Class: "Class 11", Board: "Madhyamik",
				Testimonial: "The study materials provided by Atom Institute are exceptional. They cover every aspect of the syllabus in detail and include plenty of practice questions.",
				Image:       "/placeholder-user.jpg",
			},
		},
		Gallery: []GalleryImage{
			{ID: 1, Src: "/images/logo.jpeg", Alt: "Institute Building", Category: "campus"},
			{ID: 2, Src: "/placeholder.jpg", Alt: "Physics Laboratory", Category: "labs"},
			{ID: 3, Src: "/placeholder.jpg", Alt: "Chemistry Laboratory", Category: "labs"},
			{ID: 4, Src: "/placeholder.jpg", Alt: "Computer Lab", Category: "facilities"},
			{ID: 5, Src: "/placeholder.jpg", Alt: "Library", Category: "facilities"},
			{ID: 6, Src: "/placeholder.jpg", Alt: "Classroom A", Category: "classrooms"},
			{ID: 7, Src: "/placeholder.jpg", Alt: "Classroom B", Category: "classrooms"},
			{ID: 8, Src: "/placeholder.jpg", Alt: "Annual Science Exhibition", Category: "events"},
			{ID: 9, Src: "/placeholder.jpg", Alt: "Sports Day", Category: "events"},
			{ID: 10, Src: "/placeholder.jpg", Alt: "Cultural Program", Category: "events"},
		},
	}
}

// defaultNotes builds one placeholder note per subject for every class and
// board. Class 10 has no Computer Science.
func defaultNotes() []ClassNotes {
	out := make([]ClassNotes, 0, 3)
	id := 1
	for _, num := range []int{10, 11, 12} {
		cn := ClassNotes{Class: num}
		for _, board := range DefaultBoards {
			bn := BoardNotes{Board: board}
			for _, subject := range []string{"Physics", "Chemistry", "Biology", "Mathematics", "Computer Science"} {
				if num == 10 && subject == "Computer Science" {
					continue
				}
				link := fmt.Sprintf("https://drive.google.com/file/d/atom-%d-%s-%d/view", num, board, id)
				bn.Subjects = append(bn.Subjects, SubjectNotes{
					Subject: subject,
					Notes: []Note{{
						ID:          id,
						Title:       fmt.Sprintf("%s Complete Notes", subject),
						Description: fmt.Sprintf("Chapter-wise %s notes for Class %d %s", subject, num, board),
						FileType:    "PDF",
						DriveLink:   link,
					}},
				})
				id++
			}
			cn.Boards = append(cn.Boards, bn)
		}
		out = append(out, cn)
	}
	return out
}
