package locale

var french = &Catalog{
	labels: map[string]string{
		"planning":  "Planification",
		"active":    "Actif",
		"completed": "Terminé",
		"on_hold":   "En attente",

		"available":      "Disponible",
		"in_use":         "En utilisation",
		"maintenance":    "Maintenance",
		"out_of_service": "Hors service",

		"fuel":             "Carburant",
		"labor":            "Main-d'œuvre",
		"materials":        "Matériaux",
		"equipment_rental": "Location d'équipement",
		"other":            "Autre",
	},
	months: [12]string{"Jan", "Fév", "Mar", "Avr", "Mai", "Juin", "Juil", "Août", "Sep", "Oct", "Nov", "Déc"},
	messages: map[MessageKey]string{
		MsgLoginRequired: "Vous devez être connecté pour ajouter une dépense",
		MsgInvalidImage:  "Veuillez sélectionner une image valide",
		MsgImageTooLarge: "L'image ne doit pas dépasser 5 MB",
		MsgConfirmDelete: "Êtes-vous sûr de vouloir supprimer",
		MsgInvalidID:     "Identifiant invalide",
		MsgSignedOut:     "Déconnecté",
		"load_failed":    "Erreur lors du chargement",
		"save_failed":    "Erreur lors de l'enregistrement",
		"delete_failed":  "Erreur lors de la suppression",
	},
	operations: map[string]map[Operation]string{
		"dashboard": {
			OpLoad: "Erreur lors du chargement du tableau de bord",
		},
		"client": {
			OpLoad:   "Erreur lors du chargement des clients",
			OpSave:   "Erreur lors de l'enregistrement du client",
			OpDelete: "Erreur lors de la suppression du client",
		},
		"project": {
			OpLoad:   "Erreur lors du chargement des projets",
			OpSave:   "Erreur lors de l'enregistrement du projet",
			OpDelete: "Erreur lors de la suppression du projet",
		},
		"equipment": {
			OpLoad:   "Erreur lors du chargement des équipements",
			OpSave:   "Erreur lors de l'enregistrement de l'équipement",
			OpDelete: "Erreur lors de la suppression de l'équipement",
		},
		"expense": {
			OpLoad:   "Erreur lors du chargement des dépenses",
			OpSave:   "Erreur lors de l'enregistrement de la dépense",
			OpDelete: "Erreur lors de la suppression de la dépense",
		},
		"timesheet": {
			OpLoad:   "Erreur lors du chargement des feuilles de temps",
			OpSave:   "Erreur lors de l'enregistrement de la feuille de temps",
			OpDelete: "Erreur lors de la suppression de la feuille de temps",
		},
	},
	this: map[string]string{
		"client":    "ce client",
		"project":   "ce projet",
		"equipment": "cet équipement",
		"expense":   "cette dépense",
		"timesheet": "cette feuille de temps",
	},
	columns: map[string][]string{
		"expenses":   {"Date", "Description", "Catégorie", "Projet", "N° de reçu", "Montant"},
		"timesheets": {"Date", "Employé", "Projet", "Tâche", "Heures", "Taux horaire", "Coût"},
		"total":      {"Total"},
	},
}
