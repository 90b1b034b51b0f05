package content

// Default returns the built-in site content. Each call builds a fresh Site so
// callers can never share slices with one another.
func Default() *Site {
	contact := ContactInfo{
		Name:     "Shival Gupta",
		Phone:    "+91 7091041542",
		Email:    "sgupta.5545@gmail.com",
		GitHub:   "https://github.com/shival-gupta",
		LinkedIn: "https://linkedin.com/in/shival-gupta",
		Website:  "https://shivalgupta.me",
		Location: "Chennai, India",
	}

	return &Site{
		Contact: contact,
		About: `I'm a passionate developer specializing in AI, Robotics, IoT, and Extended Reality. With a B.Tech in
Computer Science from VIT Chennai, I love building systems that bridge the physical and digital worlds.`,

		Skills: []Skill{
			{Category: "Languages", Items: []string{"Java", "Python", "C", "C++", "C#", "SQL"}},
			{Category: "Web Development", Items: []string{"Next.js", "Tailwind CSS", "Clerk.js", "Prisma ORM", "PostgreSQL", "WebSockets"}},
			{Category: "AI, Robotics & IoT", Items: []string{"Agentic AI", "RAG", "ROS", "Arduino", "Jetson Nano"}},
			{Category: "Tools", Items: []string{"Docker", "Blender", "Unity", "OpenXR (VR)"}},
		},

		Projects: []Project{
			{
				ID:        "omni-wheel-robot",
				Title:     "Autonomous Omni-Wheel Library Robot",
				Subtitle:  "Capstone Project",
				DateRange: "Jan 2025 – Apr 2025",
				Description: []string{
					"Integrated Jetson Nano with Arduino motor control and AI navigation.",
					"Implemented ROS-based LiDAR mapping and IR-guided line following.",
				},
				Technologies: []string{"Jetson Nano", "ROS", "Arduino", "Python", "C++"},
				Categories:   []string{"robotics", "ai"},
				Featured:     true,
			},
			{
				ID:        "smart-home-automation",
				Title:     "Smart Home Automation",
				Subtitle:  "Samsung PRISM Worklet",
				DateRange: "Sep 2024 – Jun 2025",
				Description: []string{
					"Built 3D smart home simulation in Unity as a testbed for AI agents.",
					"Connected AI backend with real-time device orchestration via WebSocket/HTTP.",
					"Developed control dashboard for monitoring and agent-based interaction.",
				},
				Technologies:   []string{"Unity", "crewAI", "WebSockets", "Next.js"},
				Categories:     []string{"iot", "ai", "web"},
				CertificateURL: "#",
				Featured:       true,
			},
			{
				ID:        "samsung-store-xr",
				Title:     "Samsung Store XR",
				Subtitle:  "Samsung PRISM Challenge, Winner",
				DateRange: "Feb 2024 – Jul 2024",
				Description: []string{
					"Built VR prototype of Samsung's store for Meta Quest and other VR devices.",
					"Added teleportation, interactive product showcase, and cart system.",
				},
				Technologies:   []string{"Unity", "OpenXR", "Blender"},
				Categories:     []string{"xr", "games"},
				CertificateURL: "#",
				Featured:       true,
			},
		},

		Experience: []Experience{
			{
				ID:        "satorixr",
				Role:      "XR Developer Intern",
				Company:   "SatoriXR",
				Location:  "Chennai, India",
				DateRange: "Feb 2025 – Jun 2025",
				Description: []string{
					"Led a team of 4 developers and a 3D artist on a defense-focused VR simulation.",
					"Processed DEMs and satellite imagery into interactive Unity terrains.",
					"Implemented missile trajectory modeling and Google Earth–style tools.",
					"Helped hosting OpenProject (OpenSource Jira alternative) on Azure.",
				},
				CertificateURL: "#",
			},
			{
				ID:        "airtel",
				Role:      "Software Developer Intern",
				Company:   "Airtel Payments Bank",
				Location:  "New Delhi",
				DateRange: "Sep 2023 – Nov 2023",
				Description: []string{
					"Worked in Agile/Scrum workflows for fintech app development.",
					"Built a secure full-stack B2B SaaS prototype for transactions.",
					"Implemented Next.js + Prisma + PostgreSQL stack with encryption.",
					"Integrated third-party auth (Clerk.js) and modern UI (Tailwind + shadcn).",
				},
				CertificateURL: "#",
			},
		},

		Education: []Education{
			{
				ID:          "vit",
				Degree:      "B.Tech in Computer Science and Engineering with Specialization in AI and Robotics",
				Institution: "Vellore Institute of Technology",
				Location:    "Chennai",
				DateRange:   "2021 – 2025 (Graduated)",
				Grade:       "7.84",
				GradeType:   GradeCGPA,
			},
			{
				ID:          "school-12",
				Degree:      "Senior Secondary (XII) - CBSE",
				Institution: "St. Karen's High School",
				Location:    "Patna",
				DateRange:   "2020",
				Grade:       "62.17%",
				GradeType:   GradePercentage,
			},
			{
				ID:          "school-10",
				Degree:      "Secondary (X) - CBSE",
				Institution: "St. Karen's High School",
				Location:    "Patna",
				DateRange:   "2018",
				Grade:       "75.67%",
				GradeType:   GradePercentage,
			},
		},

		Extracurriculars: []Extracurricular{
			{Name: "Piano", Icon: "music"},
			{Name: "Skating", Icon: "activity"},
			{Name: "Badminton", Icon: "activity"},
			{Name: "Photography", Icon: "camera"},
			{Name: "Videography", Icon: "video"},
		},

		Hero: Hero{
			Greeting:    "Hi, I'm",
			Name:        contact.Name,
			Tagline:     "Building intelligent systems at the intersection of",
			Highlights:  []string{"AI", "Robotics", "IoT", "XR"},
			Description: "I craft autonomous robots, immersive VR experiences, and intelligent IoT systems. Fresh B.Tech graduate from VIT Chennai, specializing in AI and Robotics.",
			Primary:     Link{Text: "View Projects", Href: "/projects"},
			Secondary:   Link{Text: "Download Resume", Href: "/resume"},
		},

		Metadata: Metadata{
			Title:       "Shival Gupta | AI, Robotics & XR Developer",
			Description: "Portfolio of Shival Gupta – Building intelligent systems at the intersection of AI, Robotics, IoT, and Extended Reality.",
			Keywords: []string{
				"AI Developer", "Robotics Engineer", "XR Developer", "VR Developer",
				"Full Stack Developer", "Next.js", "Unity", "ROS", "Machine Learning",
			},
			Author:  contact.Name,
			SiteURL: contact.Website,
			OGImage: "/static/img/og-image.png",
		},
	}
}
