package gen

// Static flavor data for the synthetic league. Everything here is invented:
// fantasy cities and clubs, with player names drawn from per-region pools
// weighted roughly like a real top-flight squad list.

var fantasyCities = []string{
	"Stormwind", "Krondor", "Silverpeak", "Moonlight Bay", "Thunder Valley",
	"Crystal Coast", "Shadow Harbor", "Golden Plains", "Frost Ridge", "Emerald Hills",
	"Crimson Port", "Azure Bay", "Sunset Shore", "Dragon's Keep", "Phoenix Rise",
	"Silver Falls", "Granite City", "Maple Grove", "Riverside", "Oakmont",
	"Pinewood", "Cedarville", "Willowbrook", "Birchfield", "Hawthorne",
}

var clubSuffixes = []string{
	"United", "City", "Rangers", "Athletic", "Wanderers",
	"Town", "Rovers", "FC", "Hotspur", "Albion", "County",
	"Hearts", "Celtic", "Dynamos", "Strikers", "Titans", "Warriors",
}

var stadiumTypes = []string{
	"Arena", "Stadium", "Park", "Ground", "Field",
	"Dome", "Fortress", "Citadel", "Colosseum",
}

var stadiumDescriptors = []string{
	"Thunder", "Lightning", "Storm", "Crystal", "Golden",
	"Silver", "Royal", "Imperial", "Grand", "Memorial",
	"Victory", "Glory", "Honor", "United", "Premier",
}

var clubColors = [][2]string{
	{"Red", "White"}, {"Blue", "White"}, {"Green", "White"},
	{"Yellow", "Black"}, {"Black", "White"}, {"Purple", "Gold"},
	{"Orange", "Blue"}, {"Maroon", "Sky Blue"}, {"Navy", "Red"},
	{"Crimson", "Silver"},
}

var formations = []string{"4-3-3", "4-4-2", "4-2-3-1", "3-5-2", "4-1-4-1", "3-4-3"}

var playingStyles = []string{
	"Possession", "Counter-Attack", "High Pressing",
	"Defensive", "Balanced", "Direct",
}

// nationality maps a demonym to a name pool and a selection weight.
type nationality struct {
	Name   string
	Pool   string
	Weight float64
}

var nationalities = []nationality{
	{"English", "anglo", 0.20},
	{"Scottish", "anglo", 0.02},
	{"Irish", "anglo", 0.02},
	{"Spanish", "iberian", 0.12},
	{"Portuguese", "iberian", 0.05},
	{"Argentine", "iberian", 0.06},
	{"Uruguayan", "iberian", 0.02},
	{"Brazilian", "brazilian", 0.09},
	{"French", "french", 0.10},
	{"Senegalese", "french", 0.02},
	{"Ivorian", "french", 0.02},
	{"German", "german", 0.09},
	{"Austrian", "german", 0.01},
	{"Dutch", "dutch", 0.05},
	{"Belgian", "dutch", 0.03},
	{"Italian", "italian", 0.07},
	{"Croatian", "slavic", 0.02},
	{"Serbian", "slavic", 0.02},
	{"Polish", "slavic", 0.02},
	{"Swedish", "nordic", 0.02},
	{"Danish", "nordic", 0.02},
	{"Norwegian", "nordic", 0.01},
	{"Nigerian", "african", 0.03},
	{"Ghanaian", "african", 0.02},
	{"Japanese", "japanese", 0.02},
	{"Korean", "korean", 0.02},
	{"American", "anglo", 0.01},
	{"Mexican", "iberian", 0.02},
}

type namePool struct {
	First []string
	Last  []string
}

var namePools = map[string]namePool{
	"anglo": {
		First: []string{"James", "Harry", "Oliver", "Jack", "George", "Callum", "Lewis", "Mason", "Declan", "Aaron", "Kyle", "Jordan", "Reece", "Conor", "Luke", "Ben"},
		Last:  []string{"Smith", "Walker", "Thompson", "Clarke", "Harrison", "Bennett", "Shaw", "Palmer", "Foster", "Gallagher", "Doyle", "Murray", "Barnes", "Ward", "Hughes", "Mills"},
	},
	"iberian": {
		First: []string{"Sergio", "Pablo", "Diego", "Javier", "Alvaro", "Marcos", "Iker", "Raul", "Mateo", "Nicolas", "Joao", "Tiago", "Rodrigo", "Bruno", "Andres", "Federico"},
		Last:  []string{"Garcia", "Fernandez", "Rodriguez", "Martinez", "Lopez", "Sanchez", "Torres", "Silva", "Costa", "Pereira", "Moreno", "Navarro", "Herrera", "Vargas", "Castillo", "Rojas"},
	},
	"brazilian": {
		First: []string{"Gabriel", "Lucas", "Matheus", "Vinicius", "Thiago", "Rafael", "Felipe", "Gustavo", "Caio", "Pedro", "Eduardo", "Leandro", "Douglas", "Renan", "Igor", "Wesley"},
		Last:  []string{"Santos", "Oliveira", "Souza", "Lima", "Almeida", "Ribeiro", "Carvalho", "Gomes", "Barbosa", "Araujo", "Cardoso", "Teixeira", "Moraes", "Nascimento", "Correia", "Dias"},
	},
	"french": {
		First: []string{"Antoine", "Lucas", "Hugo", "Theo", "Mathis", "Nolan", "Enzo", "Leo", "Mamadou", "Ousmane", "Ibrahima", "Moussa", "Karim", "Yann", "Remi", "Florian"},
		Last:  []string{"Dubois", "Moreau", "Laurent", "Girard", "Fontaine", "Rousseau", "Lemaire", "Dupont", "Diallo", "Ndiaye", "Toure", "Kone", "Mercier", "Blanchard", "Perrin", "Chevalier"},
	},
	"german": {
		First: []string{"Leon", "Lukas", "Jonas", "Niklas", "Felix", "Maximilian", "Tobias", "Florian", "Moritz", "Julian", "Philipp", "Sebastian", "Timo", "Kai", "Nico", "Jan"},
		Last:  []string{"Muller", "Schmidt", "Fischer", "Weber", "Wagner", "Becker", "Hoffmann", "Schulz", "Koch", "Richter", "Klein", "Wolf", "Neumann", "Braun", "Kruger", "Vogel"},
	},
	"dutch": {
		First: []string{"Daan", "Sem", "Lars", "Thijs", "Ruben", "Jesse", "Niels", "Bram", "Sven", "Wout", "Koen", "Joris", "Stijn", "Teun", "Milan", "Gijs"},
		Last:  []string{"de Jong", "van Dijk", "Bakker", "Visser", "Smit", "Meijer", "Mulder", "Bos", "Vos", "Peters", "Hendriks", "van Leeuwen", "Dekker", "Brouwer", "Kuipers", "Willems"},
	},
	"italian": {
		First: []string{"Lorenzo", "Matteo", "Alessandro", "Davide", "Federico", "Riccardo", "Andrea", "Giacomo", "Nicolo", "Marco", "Simone", "Luca", "Gianluca", "Emanuele", "Stefano", "Dario"},
		Last:  []string{"Rossi", "Russo", "Ferrari", "Esposito", "Bianchi", "Romano", "Colombo", "Ricci", "Marino", "Greco", "Bruno", "Gallo", "Conti", "De Luca", "Mancini", "Costa"},
	},
	"slavic": {
		First: []string{"Luka", "Marko", "Ivan", "Nikola", "Milan", "Stefan", "Petar", "Filip", "Jakub", "Mateusz", "Kacper", "Szymon", "Dusan", "Ante", "Josip", "Bartosz"},
		Last:  []string{"Kovacevic", "Jovanovic", "Petrovic", "Markovic", "Horvat", "Babic", "Novak", "Kowalski", "Nowak", "Wisniewski", "Zielinski", "Szymanski", "Vukovic", "Radic", "Peric", "Mazur"},
	},
	"nordic": {
		First: []string{"Erik", "Oskar", "Emil", "Viktor", "Anton", "Magnus", "Mikkel", "Rasmus", "Kasper", "Jonas", "Henrik", "Axel", "Gustav", "Sander", "Markus", "Elias"},
		Last:  []string{"Andersson", "Johansson", "Karlsson", "Nilsson", "Eriksson", "Larsen", "Hansen", "Jensen", "Pedersen", "Nielsen", "Berg", "Haaland", "Dahl", "Lund", "Solberg", "Holm"},
	},
	"african": {
		First: []string{"Emmanuel", "Samuel", "Victor", "Daniel", "Joseph", "Kelechi", "Chinedu", "Kwame", "Kofi", "Yaw", "Abdul", "Ismail", "David", "Michael", "Peter", "Francis"},
		Last:  []string{"Okafor", "Adeyemi", "Okonkwo", "Eze", "Obi", "Mensah", "Boateng", "Appiah", "Owusu", "Asante", "Abubakar", "Salisu", "Aina", "Iwobi", "Ndidi", "Chukwu"},
	},
	"japanese": {
		First: []string{"Haruto", "Yuto", "Sota", "Riku", "Kaito", "Takumi", "Ren", "Daiki", "Shota", "Kenta", "Ryo", "Tatsuya", "Keisuke", "Hiroki", "Yuya", "Kosuke"},
		Last:  []string{"Sato", "Suzuki", "Takahashi", "Tanaka", "Watanabe", "Ito", "Yamamoto", "Nakamura", "Kobayashi", "Kato", "Yoshida", "Yamada", "Sasaki", "Matsumoto", "Inoue", "Kimura"},
	},
	"korean": {
		First: []string{"Min-jun", "Seo-jun", "Ji-ho", "Ha-jun", "Do-yun", "Jun-seo", "Si-woo", "Ye-jun", "Woo-jin", "Tae-yang", "Hyun-woo", "Sung-min", "Jae-hyun", "Dong-hyun", "Kyung-soo", "Young-ho"},
		Last:  []string{"Kim", "Lee", "Park", "Choi", "Jung", "Kang", "Cho", "Yoon", "Jang", "Lim", "Han", "Oh", "Seo", "Shin", "Kwon", "Hwang"},
	},
}

var transferReasons = []string{
	"Career progression",
	"Higher wages",
	"First team opportunity",
	"Playing time",
	"Relegation clause",
	"Contract expiry",
	"Club financial needs",
	"Manager request",
}
