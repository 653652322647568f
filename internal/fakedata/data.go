package fakedata

var firstNames = []string{
	"Ana", "Beatriz", "Bruno", "Camila", "Carlos", "Clara", "Daniel", "Eduardo",
	"Fernanda", "Gabriel", "Gustavo", "Helena", "Isabela", "João", "Júlia", "Larissa",
	"Leonardo", "Lucas", "Luiza", "Marcos", "Maria", "Mariana", "Mateus", "Natália",
	"Paulo", "Pedro", "Rafael", "Renata", "Rita", "Rodrigo", "Sofia", "Thiago",
	"Valentina", "Vinícius", "Walter", "Yasmin", "James", "Mary", "Robert", "Linda",
	"David", "Emily", "Michael", "Sarah", "Thomas", "Laura",
}

var lastNames = []string{
	"Silva", "Santos", "Oliveira", "Souza", "Rodrigues", "Ferreira", "Alves", "Pereira",
	"Lima", "Gomes", "Costa", "Ribeiro", "Martins", "Carvalho", "Almeida", "Lopes",
	"Soares", "Fernandes", "Vieira", "Barbosa", "Rocha", "Dias", "Nascimento", "Andrade",
	"Moreira", "Nunes", "Marques", "Machado", "Mendes", "Freitas", "Cardoso", "Ramos",
	"Smith", "Johnson", "Brown", "Miller", "Davis", "Wilson", "Taylor", "Clark",
}

var emailDomains = []string{
	"example.com", "example.org", "example.net", "mail.example.com",
}

var loremWords = []string{
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing", "elit",
	"sed", "do", "eiusmod", "tempor", "incididunt", "ut", "labore", "et",
	"dolore", "magna", "aliqua", "enim", "ad", "minim", "veniam", "quis",
	"nostrud", "exercitation", "ullamco", "laboris", "nisi", "aliquip", "ex", "ea",
	"commodo", "consequat", "duis", "aute", "irure", "in", "reprehenderit", "voluptate",
	"velit", "esse", "cillum", "fugiat", "nulla", "pariatur", "excepteur", "sint",
	"occaecat", "cupidatat", "non", "proident", "sunt", "culpa", "qui", "officia",
	"deserunt", "mollit", "anim", "id", "est", "laborum",
}
