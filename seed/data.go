package seed

var firstNames = []string{
	"Ada", "Alan", "Grace", "Linus", "Margaret", "Dennis", "Bjarne", "Guido",
	"Brendan", "Ryan", "James", "Ken", "Brian", "Tim", "Vint", "Donald",
	"Barbara", "Frances", "Jean", "Radia", "Sophie", "Shafi", "Fei-Fei",
	"John", "Steve", "Bill", "Elon", "Jeff", "Mark", "Larry", "Sergey",
	"Satya", "Sundar", "Jensen", "Lisa", "Susan", "Marissa", "Sheryl", "Ginni",
}

var lastNames = []string{
	"Lovelace", "Turing", "Hopper", "Torvalds", "Hamilton", "Ritchie", "Stroustrup",
	"van Rossum", "Eich", "Dahl", "Gosling", "Thompson", "Kernighan", "Berners-Lee",
	"Cerf", "Knuth", "Liskov", "Allen", "Bartik", "Perlman", "Wilson", "Goldwasser",
	"Li", "McCarthy", "Wozniak", "Gates", "Musk", "Bezos", "Zuckerberg", "Page",
	"Brin", "Nadella", "Pichai", "Huang", "Su", "Wojcicki", "Mayer", "Sandberg", "Rometty",
}

var roles = []string{
	"admin", "developer", "designer", "manager", "analyst", "engineer", "lead", "intern",
}

var statuses = []string{"active", "inactive", "pending", "verified"}

var avatars = []string{
	"coder", "builder", "hacker", "explorer", "penguin", "snake", "coffee", "diamond", "crab", "bolt",
	"leaf", "rocket", "robot", "chip", "spark",
}

var productAdjectives = []string{
	"Premium", "Ultra", "Pro", "Elite", "Essential", "Classic", "Modern", "Smart", "Wireless", "Ergonomic",
}

var productNouns = []string{
	"Keyboard", "Monitor", "Mouse", "Headphones", "Webcam", "Microphone", "Desk", "Chair", "Lamp", "Hub",
	"Cable", "Stand", "Dock", "Speaker", "Tablet",
}

var productDescriptions = []string{
	"High-quality build with premium materials",
	"Perfect for professionals and enthusiasts",
	"Award-winning design and performance",
	"Industry-leading technology",
	"Sleek and modern aesthetic",
	"Built for comfort and productivity",
	"Next-generation features",
	"Eco-friendly and sustainable",
}

var categories = []string{
	"electronics", "furniture", "accessories", "audio", "lighting", "peripherals", "storage", "networking",
}

// postTitles are templates; each {} is filled with a tech term in order.
var postTitles = []string{
	"Why {} is the Future of {}",
	"Getting Started with {}",
	"10 Tips for Better {}",
	"The Complete Guide to {}",
	"How I Built {} with {}",
	"Understanding {} in {}",
	"{} vs {}: Which is Better?",
	"Mastering {} for Beginners",
	"Advanced {} Techniques",
	"The State of {} in 2024",
}

var techTerms = []string{
	"React", "TypeScript", "Rust", "Go", "Python", "JavaScript", "SQL", "GraphQL",
	"Docker", "Kubernetes", "AWS", "Machine Learning", "AI", "Web Development",
	"Cloud Computing", "DevOps", "Microservices", "REST APIs", "WebAssembly", "Edge Computing",
}
