package i18n

// Site copy for both languages. Keys are grouped by page section; the French
// table mirrors the English one key for key.
var translations = map[Language]map[string]string{
	English: {
		// Navigation
		"nav.about":     "About",
		"nav.services":  "Services",
		"nav.portfolio": "Portfolio",
		"nav.packs":     "Packs",
		"nav.contact":   "Contact",

		// Hero
		"hero.typing":   "web solutions with ",
		"hero.subtitle": "Full-stack web developer & E-commerce stores realizer",
		"hero.cta":      "Explore My Work",

		// About
		"about.title":      "About Me",
		"about.experience": "Years Experience",
		"about.projects":   "Projects Completed",
		"about.clients":    "Happy Clients",
		"about.location":   "Algiers, Algeria",
		"about.available":  "Available for work",
		"about.connect":    "Let's Connect",

		// Services
		"services.title":                 "Services",
		"services.learnMore":             "Learn More",
		"services.web.title":             "Web Design & Landing Pages",
		"services.web.description":       "Modern, responsive web design and high-converting landing pages that engage your audience.",
		"services.ecommerce.title":       "Custom & Shopify Stores",
		"services.ecommerce.description": "Professional e-commerce solutions with custom design and Shopify integration for your business needs.",
		"services.cards.title":           "Virtual Visit Cards",
		"services.cards.description":     "Digital business cards that make a lasting impression and help you network effectively.",

		// Portfolio
		"portfolio.title":       "Portfolio",
		"portfolio.viewProject": "View Project",

		// Packs
		"packs.title":               "Packs",
		"packs.viewPacks":           "View Packs",
		"packs.selectPack":          "Select Pack",
		"packs.popular":             "Most Popular",
		"packs.deliveryTime":        "Delivery Time",
		"packs.revisions":           "Revisions",
		"packs.support":             "Support",
		"packs.delivery.basic":      "7-10 days",
		"packs.delivery.standard":   "10-14 days",
		"packs.delivery.premium":    "14-21 days",
		"packs.revisions.unlimited": "Unlimited",
		"packs.support.email":       "Email Support",
		"packs.support.priority":    "Priority Support",
		"packs.support.dedicated":   "Dedicated Support",

		"packs.visibility.title":    "Visibility Pack",
		"packs.visibility.subtitle": "Perfect for businesses looking to establish a strong online presence",
		"packs.visibility.feature1": "Professional branding integration",
		"packs.visibility.feature2": "Content forms with database",
		"packs.visibility.feature3": "User account management",
		"packs.visibility.feature4": "Advanced integration",
		"packs.visibility.feature5": "Mobile responsive design",
		"packs.visibility.feature6": "Basic SEO optimization",

		"packs.management.title":    "Management Pack",
		"packs.management.subtitle": "Perfect for businesses that need ongoing content management and regular updates",
		"packs.management.feature1": "Content Management System",
		"packs.management.feature2": "Regular Updates & Maintenance",
		"packs.management.feature3": "SEO Optimization",
		"packs.management.feature4": "Analytics & Reporting",
		"packs.management.feature5": "User Authentication",
		"packs.management.feature6": "Database Integration",

		"packs.innovative.title":    "Innovative Systems Pack",
		"packs.innovative.subtitle": "Advanced solutions for businesses ready to leverage cutting-edge technology",
		"packs.innovative.feature1": "Advanced E-commerce Features",
		"packs.innovative.feature2": "AI-Powered Analytics",
		"packs.innovative.feature3": "Custom Integrations",
		"packs.innovative.feature4": "Advanced Security Systems",
		"packs.innovative.feature5": "Scalable Architecture",
		"packs.innovative.feature6": "24/7 Support",

		// Contact
		"contact.title":          "Get In Touch",
		"contact.subtitle":       "Let's work together",
		"contact.description":    "Have a project in mind or need a custom solution? I'd love to hear from you.",
		"contact.name":           "Full Name",
		"contact.email":          "Email",
		"contact.subject":        "Subject",
		"contact.message":        "Message",
		"contact.send":           "Send Message",
		"contact.successTitle":   "Message Sent Successfully!",
		"contact.successMessage": "Thank you for reaching out. I'll get back to you soon.",

		// Footer
		"footer.rights": "All rights reserved.",
	},
	French: {
		// Navigation
		"nav.about":     "À propos",
		"nav.services":  "Services",
		"nav.portfolio": "Portfolio",
		"nav.packs":     "Packs",
		"nav.contact":   "Contact",

		// Hero
		"hero.typing":   "solutions web avec ",
		"hero.subtitle": "Développeur web full-stack & Créateur de boutiques e-commerce",
		"hero.cta":      "Découvrir Mon Travail",

		// About
		"about.title":      "À propos de moi",
		"about.experience": "Années d'Expérience",
		"about.projects":   "Projets Réalisés",
		"about.clients":    "Clients Satisfaits",
		"about.location":   "Alger, Algérie",
		"about.available":  "Disponible pour travailler",
		"about.connect":    "Restons Connectés",

		// Services
		"services.title":                 "Services",
		"services.learnMore":             "En Savoir Plus",
		"services.web.title":             "Design Web & Pages d'Atterrissage",
		"services.web.description":       "Design web moderne et réactif et pages d'atterrissage à forte conversion qui engagent votre audience.",
		"services.ecommerce.title":       "Boutiques Personnalisées & Shopify",
		"services.ecommerce.description": "Solutions e-commerce professionnelles avec design personnalisé et intégration Shopify pour vos besoins d'entreprise.",
		"services.cards.title":           "Cartes de Visite Virtuelles",
		"services.cards.description":     "Cartes de visite numériques qui laissent une impression durable et vous aident à réseauter efficacement.",

		// Portfolio
		"portfolio.title":       "Portfolio",
		"portfolio.viewProject": "Voir le Projet",

		// Packs
		"packs.title":               "Packs",
		"packs.viewPacks":           "Voir les Packs",
		"packs.selectPack":          "Sélectionner le Pack",
		"packs.popular":             "Le Plus Populaire",
		"packs.deliveryTime":        "Temps de Livraison",
		"packs.revisions":           "Révisions",
		"packs.support":             "Support",
		"packs.delivery.basic":      "7-10 jours",
		"packs.delivery.standard":   "10-14 jours",
		"packs.delivery.premium":    "14-21 jours",
		"packs.revisions.unlimited": "Illimitées",
		"packs.support.email":       "Support Email",
		"packs.support.priority":    "Support Prioritaire",
		"packs.support.dedicated":   "Support Dédié",

		"packs.visibility.title":    "Pack Visibilité",
		"packs.visibility.subtitle": "Parfait pour les entreprises cherchant à établir une forte présence en ligne",
		"packs.visibility.feature1": "Intégration de marque professionnelle",
		"packs.visibility.feature2": "Formulaires de contenu avec base de données",
		"packs.visibility.feature3": "Gestion de compte utilisateur",
		"packs.visibility.feature4": "Intégration avancée",
		"packs.visibility.feature5": "Design responsive mobile",
		"packs.visibility.feature6": "Optimisation SEO de base",

		"packs.management.title":    "Pack Gestion",
		"packs.management.subtitle": "Parfait pour les entreprises qui ont besoin de gestion de contenu continue et de mises à jour régulières",
		"packs.management.feature1": "Système de Gestion de Contenu",
		"packs.management.feature2": "Mises à Jour et Maintenance Régulières",
		"packs.management.feature3": "Optimisation SEO",
		"packs.management.feature4": "Analytiques et Rapports",
		"packs.management.feature5": "Authentification Utilisateur",
		"packs.management.feature6": "Intégration Base de Données",

		"packs.innovative.title":    "Pack Systèmes Innovants",
		"packs.innovative.subtitle": "Solutions avancées pour les entreprises prêtes à exploiter la technologie de pointe",
		"packs.innovative.feature1": "Fonctionnalités E-commerce Avancées",
		"packs.innovative.feature2": "Analytiques Alimentées par IA",
		"packs.innovative.feature3": "Intégrations Personnalisées",
		"packs.innovative.feature4": "Systèmes de Sécurité Avancés",
		"packs.innovative.feature5": "Architecture Évolutive",
		"packs.innovative.feature6": "Support 24/7",

		// Contact
		"contact.title":          "Contactez-moi",
		"contact.subtitle":       "Travaillons ensemble",
		"contact.description":    "Vous avez un projet en tête ou besoin d'une solution personnalisée ? J'aimerais vous entendre.",
		"contact.name":           "Nom complet",
		"contact.email":          "Email",
		"contact.subject":        "Sujet",
		"contact.message":        "Message",
		"contact.send":           "Envoyer le message",
		"contact.successTitle":   "Message envoyé avec succès !",
		"contact.successMessage": "Merci de m'avoir contacté. Je vous répondrai bientôt.",

		// Footer
		"footer.rights": "Tous droits réservés.",
	},
}
