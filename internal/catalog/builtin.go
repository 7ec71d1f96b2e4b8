package catalog

import "folio/internal/enrich"

// builtin is the portfolio shipped with the binary.
var builtin = []enrich.RawProject{
	{
		ID:              "documentacion-casos-umbral",
		Title:           "Documentación de Casos de Umbral",
		Description:     "Plataforma de documentación para casos de umbral con búsqueda avanzada y navegación intuitiva.",
		LongDescription: "Sitio de documentación estático con índice de búsqueda, navegación lateral generada desde MDX y modo oscuro.",
		Category:        "documentation",
		Technologies:    []string{"Next.js", "TypeScript", "Tailwind CSS", "MDX", "Algolia"},
		Tags:            []string{"documentación", "búsqueda", "mdx"},
		Status:          "completed",
		Featured:        true,
		StartDate:       "2024-01-15",
		EndDate:         "2024-04-30",
		Role:            "Desarrollador Full Stack",
		URL:             "https://documentacion-de-casos-de-umbral.vercel.app/",
		Repository:      "https://github.com/tu-usuario/documentacion-casos-umbral",
		Image:           "/proyects/documentos-de-umbral-recorte.png",
	},
	{
		ID:              "el-palacio-dom",
		Title:           "El Palacio Dom",
		Description:     "Aplicación de gestión de tareas colaborativa con tiempo real y sincronización multiplataforma.",
		LongDescription: "Tableros compartidos con actualizaciones en vivo mediante websockets y persistencia en MongoDB.",
		Category:        "web-app",
		Technologies:    []string{"React", "Node.js", "Socket.io", "MongoDB"},
		Tags:            []string{"tiempo real", "colaboración"},
		Status:          "maintenance",
		Featured:        true,
		StartDate:       "2023-06-01",
		EndDate:         "2023-11-15",
		Role:            "Desarrollador Frontend",
		URL:             "https://el-palacio-dom.vercel.app/",
		Repository:      "https://github.com/example/tasks",
		Image:           "/proyects/el-palacio-dom.png",
	},
	{
		ID:              "sesgos-cognitivos",
		Title:           "Sesgos cognitivos",
		Description:     "Dashboard de analíticas en tiempo real con visualizaciones interactivas y reportes automatizados.",
		LongDescription: "Visualizaciones en D3 alimentadas por una API en FastAPI que agrega métricas cada minuto.",
		Category:        "dashboard",
		Technologies:    []string{"Vue.js", "D3.js", "Python", "FastAPI"},
		Tags:            []string{"visualización", "analítica"},
		Status:          "completed",
		StartDate:       "2023-02-01",
		EndDate:         "2023-05-20",
		Role:            "Desarrollador Full Stack",
		URL:             "https://sesgos-cognitivos.vercel.app",
		Repository:      "https://github.com/example/analytics",
		Image:           "/proyects/sesgos-cognitivos.png",
	},
	{
		ID:              "hipersticion",
		Title:           "Hiperstición",
		Description:     "Plataforma educativa con cursos interactivos, seguimiento de progreso y gamificación.",
		LongDescription: "Cursos con lecciones interactivas, insignias y progreso sincronizado con Supabase.",
		Category:        "educational",
		Technologies:    []string{"Next.js", "Supabase", "Tailwind CSS", "Framer Motion"},
		Tags:            []string{"educación", "gamificación"},
		Status:          "in-progress",
		Featured:        true,
		StartDate:       "2024-05-01",
		Role:            "Desarrollador Full Stack",
		URL:             "https://hipersticion-web.vercel.app/",
		Repository:      "https://github.com/example/learning",
		Image:           "/proyects/hipersticion-logo.png",
	},
	{
		ID:              "columne",
		Title:           "Columne",
		Description:     "Herramienta de generación de contenido impulsada por IA con optimización SEO.",
		LongDescription: "Generación de borradores con la API de OpenAI, análisis SEO y publicación programada en AWS.",
		Category:        "tool",
		Technologies:    []string{"React", "OpenAI API", "Express", "AWS"},
		Tags:            []string{"ia", "seo", "contenido"},
		Status:          "in-progress",
		StartDate:       "2024-03-10",
		Client:          "Columne Media",
		Role:            "Consultor técnico",
		URL:             "https://example.com",
		Repository:      "https://github.com/example/ai-content",
		Image:           "/proyects/columne.png",
	},
	{
		ID:              "fitness-tracker",
		Title:           "Fitness Tracker",
		Description:     "Aplicación de seguimiento fitness con planes personalizados y métricas detalladas.",
		LongDescription: "Aplicación móvil con planes de entrenamiento, integración con HealthKit y sincronización en Firebase.",
		Category:        "mobile-app",
		Technologies:    []string{"React Native", "Firebase", "HealthKit"},
		Tags:            []string{"salud", "móvil"},
		Status:          "archived",
		StartDate:       "2022-03-01",
		EndDate:         "2022-10-01",
		Role:            "Desarrollador Mobile",
		URL:             "https://example.com",
		Repository:      "https://github.com/example/fitness",
		Image:           "/placeholder.svg?height=300&width=400",
	},
}
