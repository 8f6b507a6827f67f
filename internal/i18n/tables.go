package i18n

var tables = map[Lang]map[string]string{
	English: {
		"feed":                "Feed",
		"chat":                "Chat",
		"profile":             "Profile",
		"settings":            "Settings",
		"help":                "Help",
		"settingsTitle":       "Settings",
		"settingsSubtitle":    "Manage your account and app preferences",
		"appearance":          "Appearance",
		"darkMode":            "Dark Mode",
		"lightMode":           "Light Mode",
		"postDisplay":         "Post Display",
		"postDisplayDesc":     "Choose how posts appear in your feed",
		"comfortable":         "Comfortable",
		"compact":             "Compact",
		"language":            "Language",
		"languageDesc":        "Select your preferred language",
		"notifications":       "Notifications",
		"notificationsNote":   "Notifications are not available in this build",
		"account":             "Account",
		"whatsOnYourMind":     "What's on your mind?",
		"enhance":             "Enhance",
		"generating":          "Generating...",
		"post":                "Post",
		"stories":             "Stories",
		"typeAMessage":        "Type a message...",
		"recording":           "Recording",
		"holdToRecord":        "Hold to record",
		"releaseToSend":       "Release to send",
		"audioCall":           "Audio call",
		"videoCall":           "Video call",
		"calling":             "Calling",
		"mute":                "Mute",
		"unmute":              "Unmute",
		"cameraOn":            "Camera on",
		"cameraOff":           "Camera off",
		"endCall":             "End call",
		"startAConversation":  "Start a conversation",
		"selectContactToChat": "Select a contact to start chatting",
		"online":              "Online",
		"offline":             "Offline",
		"aiAssistant":         "AI Assistant",
		"aiWelcome":           "Hello! I'm your Inovira assistant. How can I help you today?",
		"aiError":             "Oops! Something went wrong. Please try again.",
		"aiUnavailable":       "Sorry, I'm having trouble connecting right now.",
		"micDenied":           "Microphone access was denied",
		"deviceDenied":        "Camera and microphone access was denied",
		"editProfile":         "Edit Profile",
		"following":           "Following",
		"followers":           "Followers",
		"yourPosts":           "Your Posts",
		"noPostsYet":          "No posts yet",
	},
	Spanish: {
		"feed":                "Inicio",
		"chat":                "Chat",
		"profile":             "Perfil",
		"settings":            "Ajustes",
		"help":                "Ayuda",
		"settingsTitle":       "Ajustes",
		"settingsSubtitle":    "Administra tu cuenta y tus preferencias",
		"appearance":          "Apariencia",
		"darkMode":            "Modo oscuro",
		"lightMode":           "Modo claro",
		"postDisplay":         "Visualización de publicaciones",
		"postDisplayDesc":     "Elige cómo se muestran las publicaciones",
		"comfortable":         "Cómodo",
		"compact":             "Compacto",
		"language":            "Idioma",
		"languageDesc":        "Selecciona tu idioma preferido",
		"notifications":       "Notificaciones",
		"notificationsNote":   "Las notificaciones no están disponibles en esta versión",
		"account":             "Cuenta",
		"whatsOnYourMind":     "¿Qué estás pensando?",
		"enhance":             "Mejorar",
		"generating":          "Generando...",
		"post":                "Publicar",
		"stories":             "Historias",
		"typeAMessage":        "Escribe un mensaje...",
		"recording":           "Grabando",
		"holdToRecord":        "Mantén para grabar",
		"releaseToSend":       "Suelta para enviar",
		"audioCall":           "Llamada de voz",
		"videoCall":           "Videollamada",
		"calling":             "Llamando",
		"mute":                "Silenciar",
		"unmute":              "Activar micrófono",
		"cameraOn":            "Cámara encendida",
		"cameraOff":           "Cámara apagada",
		"endCall":             "Colgar",
		"startAConversation":  "Inicia una conversación",
		"selectContactToChat": "Selecciona un contacto para chatear",
		"online":              "En línea",
		"offline":             "Desconectado",
		"aiAssistant":         "Asistente IA",
		"aiWelcome":           "¡Hola! Soy tu asistente de Inovira. ¿En qué puedo ayudarte?",
		"aiError":             "¡Ups! Algo salió mal. Inténtalo de nuevo.",
		"aiUnavailable":       "Lo siento, tengo problemas para conectarme ahora mismo.",
		"micDenied":           "Se denegó el acceso al micrófono",
		"deviceDenied":        "Se denegó el acceso a la cámara y al micrófono",
		"editProfile":         "Editar perfil",
		"following":           "Siguiendo",
		"followers":           "Seguidores",
		"yourPosts":           "Tus publicaciones",
		"noPostsYet":          "Aún no hay publicaciones",
	},
	Portuguese: {
		"feed":                "Início",
		"chat":                "Conversas",
		"profile":             "Perfil",
		"settings":            "Configurações",
		"help":                "Ajuda",
		"settingsTitle":       "Configurações",
		"settingsSubtitle":    "Gerencie sua conta e suas preferências",
		"appearance":          "Aparência",
		"darkMode":            "Modo escuro",
		"lightMode":           "Modo claro",
		"postDisplay":         "Exibição de publicações",
		"postDisplayDesc":     "Escolha como as publicações aparecem no feed",
		"comfortable":         "Confortável",
		"compact":             "Compacto",
		"language":            "Idioma",
		"languageDesc":        "Selecione seu idioma preferido",
		"notifications":       "Notificações",
		"notificationsNote":   "Notificações não estão disponíveis nesta versão",
		"account":             "Conta",
		"whatsOnYourMind":     "No que você está pensando?",
		"enhance":             "Aprimorar",
		"generating":          "Gerando...",
		"post":                "Publicar",
		"stories":             "Histórias",
		"typeAMessage":        "Digite uma mensagem...",
		"recording":           "Gravando",
		"holdToRecord":        "Segure para gravar",
		"releaseToSend":       "Solte para enviar",
		"audioCall":           "Chamada de voz",
		"videoCall":           "Chamada de vídeo",
		"calling":             "Chamando",
		"mute":                "Silenciar",
		"unmute":              "Ativar microfone",
		"cameraOn":            "Câmera ligada",
		"cameraOff":           "Câmera desligada",
		"endCall":             "Encerrar",
		"startAConversation":  "Comece uma conversa",
		"selectContactToChat": "Selecione um contato para conversar",
		"online":              "Online",
		"offline":             "Offline",
		"aiAssistant":         "Assistente IA",
		"aiWelcome":           "Olá! Sou seu assistente do Inovira. Como posso ajudar?",
		"aiError":             "Ops! Algo deu errado. Tente novamente.",
		"aiUnavailable":       "Desculpe, estou com problemas de conexão no momento.",
		"micDenied":           "O acesso ao microfone foi negado",
		"deviceDenied":        "O acesso à câmera e ao microfone foi negado",
		"editProfile":         "Editar perfil",
		"following":           "Seguindo",
		"followers":           "Seguidores",
		"yourPosts":           "Suas publicações",
		"noPostsYet":          "Nenhuma publicação ainda",
	},
}
