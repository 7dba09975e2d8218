package start

import "github.com/epokha-game/epokha/internal/models"

// npcPool holds the candidate close people for one location type.
type npcPool struct {
	Mothers      []models.Entity
	Fathers      []models.Entity
	Grandparents []models.Entity
	Siblings     []models.Entity
	Friends      []models.Entity
	Neighbors    []models.Entity
	Animals      []models.Entity
}

// itemPool holds candidate starting items; gendered lists are merged into the
// common pool before rolling.
type itemPool struct {
	Common []models.StartItem
	Boys   []models.StartItem
	Girls  []models.StartItem
}

var npcPools = map[string]npcPool{
	"village": {
		Mothers: []models.Entity{
			{Name: "Mama", Desc: "Milks the cow before dawn, works at the club in the evening. Hands always smell of hay."},
			{Name: "Mama", Desc: "The village medic. Half the village knocks on our window at night."},
			{Name: "Mama", Desc: "Quiet and tired. Keeps a photo of the city she never moved to."},
		},
		Fathers: []models.Entity{
			{Name: "Papa", Desc: "Tractor driver at what's left of the kolkhoz. Paid in grain more often than in money."},
			{Name: "Papa", Desc: "Left for construction work in the city. Comes back twice a year with presents."},
			{Name: "Papa", Desc: "Drinks since the sovkhoz closed. Good with his hands on the sober days."},
		},
		Grandparents: []models.Entity{
			{Name: "Grandma", Desc: "Keeps the whole household running. Knows an herb for everything."},
			{Name: "Grandpa", Desc: "War veteran. Talks little, but his medals drawer is sacred."},
			{Name: "Grandma Nyura", Desc: "Lives across the road. Feeds me pancakes like it's her job."},
		},
		Siblings: []models.Entity{
			{Name: "Older brother Kolya", Desc: "Already helps in the fields. Dreams of the army as a way out."},
			{Name: "Little sister Alyonka", Desc: "Trails after me everywhere. Cries if left behind."},
		},
		Friends: []models.Entity{
			{Name: "Vanya", Desc: "Neighbor's son. We know every fishing spot on the river."},
			{Name: "Sanya", Desc: "Fearless to the point of stupidity. Jumped off the barn roof on a dare."},
			{Name: "Lenka", Desc: "The teacher's daughter. Reads books aloud to us in the hayloft."},
		},
		Neighbors: []models.Entity{
			{Name: "Uncle Petya", Desc: "Keeps bees and opinions. Shares honey, sparingly, and advice, generously."},
			{Name: "Baba Zina", Desc: "Sees everything from her bench. The village's living newspaper."},
		},
		Animals: []models.Entity{
			{Name: "Sharik", Desc: "Yard dog of no particular breed and great particular loyalty."},
			{Name: "Murka", Desc: "Barn cat. Brings mice to the porch as tribute."},
		},
	},
	"town": {
		Mothers: []models.Entity{
			{Name: "Mama", Desc: "Nurse on night shifts. Sleeps in the afternoon; we whisper at home."},
			{Name: "Mama", Desc: "Laid off from the factory lab. Sells knitwear at the Saturday market now."},
			{Name: "Mama", Desc: "Teacher. Hasn't been paid since spring but still grades every notebook."},
		},
		Fathers: []models.Entity{
			{Name: "Papa", Desc: "Still goes to the half-stopped factory. Says somebody has to keep the machines alive."},
			{Name: "Papa", Desc: "Drives a battered Zhiguli as a private taxi. Knows every pothole by name."},
			{Name: "Papa", Desc: "Went north for shift work. Sends money orders and short letters."},
		},
		Grandparents: []models.Entity{
			{Name: "Grandma", Desc: "Stands in every line for us. Her pension comes late, her patience never."},
			{Name: "Grandpa", Desc: "Retired foreman. Fixes neighbors' radios for chocolate bars 'for the kid'."},
		},
		Siblings: []models.Entity{
			{Name: "Older sister Natasha", Desc: "In her last year of school. Practices English from a crackling cassette."},
			{Name: "Little brother Dimka", Desc: "Five years old, afraid of the dark and of the elevator."},
		},
		Friends: []models.Entity{
			{Name: "Seryoga", Desc: "From the next stairwell. We trade stickers and secrets in equal measure."},
			{Name: "Vitka", Desc: "Has a real imported bike. Lets me ride it when nobody's watching."},
			{Name: "Olya", Desc: "Sits in front of me in class. Draws horses on the margins of everything."},
		},
		Neighbors: []models.Entity{
			{Name: "Aunt Lyuda", Desc: "From the fourth floor. Brings pirozhki when mama works nights."},
			{Name: "Palych", Desc: "The yardkeeper. Grumbles at everyone, quietly fixes everyone's sleds."},
		},
		Animals: []models.Entity{
			{Name: "Ryzhik", Desc: "Courtyard cat who decided our kitchen window is his."},
			{Name: "Bim", Desc: "A mutt from the garages. Walks me to school like a bodyguard."},
		},
	},
	"capital": {
		Mothers: []models.Entity{
			{Name: "Mama", Desc: "Engineer turned market trader. Counts other people's dollars with dry precision."},
			{Name: "Mama", Desc: "Works at a bank branch, the new kind. Comes home late and wary."},
			{Name: "Mama", Desc: "Raises me alone. Two jobs, three bus lines, never complains out loud."},
		},
		Fathers: []models.Entity{
			{Name: "Papa", Desc: "Institute researcher. His salary is a rumor; his patents are framed."},
			{Name: "Papa", Desc: "Went into 'business' with a friend. The word means something new every month."},
			{Name: "Papa", Desc: "Drives for a rich man. Doesn't talk about whom."},
		},
		Grandparents: []models.Entity{
			{Name: "Grandma", Desc: "Old Moscow intelligentsia. Corrects my 'ring up' to 'telephone'."},
			{Name: "Grandpa", Desc: "Keeps the dacha alive, and us with its potatoes."},
		},
		Siblings: []models.Entity{
			{Name: "Older brother Anton", Desc: "Student. Unloads trucks at night, talks about emigration at breakfast."},
			{Name: "Little sister Masha", Desc: "Collects candy wrappers from brands that didn't exist last year."},
		},
		Friends: []models.Entity{
			{Name: "Maksim", Desc: "His family has a VCR. His apartment is the cinema of our block."},
			{Name: "Denis", Desc: "Knows which kiosk sells gum with the good inserts."},
			{Name: "Katya", Desc: "From music school. Carries her violin like a shield through the courtyards."},
		},
		Neighbors: []models.Entity{
			{Name: "Aunt Raya", Desc: "Concierge of our entryway by self-appointment. Misses nothing."},
			{Name: "Uncle Slava", Desc: "Afghan war vet on the third floor. Quiet, watchful, kind to kids."},
		},
		Animals: []models.Entity{
			{Name: "Dzhek", Desc: "An overbred spaniel inherited from departed neighbors."},
			{Name: "Musya", Desc: "Apartment cat, fat before it was fashionable."},
		},
	},
}

var itemPools = map[string]itemPool{
	"village": {
		Common: []models.StartItem{
			{Name: "Slingshot", Desc: "Cut from a cherry fork. Accurate enough to be confiscated twice.", Stat: "authority", Mod: 1},
			{Name: "Fishing rod", Desc: "Grandpa's bamboo rod. The river always gives something.", Stat: "friends", Mod: 1},
			{Name: "Felt boots", Desc: "Patched valenki a size too big. Winter is long here.", Stat: "looks", Mod: -1},
			{Name: "Chronic cough", Desc: "Every February, like clockwork. The medic just sighs.", Stat: "health", Mod: -1},
			{Name: "Strong hands", Desc: "Hauling water since age five does something for you.", Stat: "body", Mod: 1},
		},
		Boys: []models.StartItem{
			{Name: "Pocket knife", Desc: "Trophy from a trade. Whittles whistles and status.", Stat: "authority", Mod: 1},
		},
		Girls: []models.StartItem{
			{Name: "Ribbon collection", Desc: "Braided every morning by grandma. A small daily armor.", Stat: "looks", Mod: 1},
		},
	},
	"town": {
		Common: []models.StartItem{
			{Name: "Dandy console", Desc: "The gray cartridge kind. Makes our flat the center of the world.", Stat: "friends", Mod: 1},
			{Name: "Library card", Desc: "The one line in town with no shortage.", Stat: "mind", Mod: 1},
			{Name: "Worn winter coat", Desc: "Third child to wear it. The sleeves tell the story.", Stat: "looks", Mod: -1},
			{Name: "Stammer", Desc: "Shows up when teachers raise their voice.", Stat: "authority", Mod: -1},
			{Name: "Courtyard hardening", Desc: "Our block settles things behind the garages. I've learned.", Stat: "body", Mod: 1},
		},
		Boys: []models.StartItem{
			{Name: "Sticker album", Desc: "Turbo inserts, almost complete. Currency of the schoolyard.", Stat: "friends", Mod: 1},
		},
		Girls: []models.StartItem{
			{Name: "Anketa notebook", Desc: "A questionnaire notebook the whole class wants to fill in.", Stat: "friends", Mod: 1},
		},
	},
	"capital": {
		Common: []models.StartItem{
			{Name: "Imported sneakers", Desc: "Real ones, from the new market. Everyone at school noticed.", Stat: "looks", Mod: 1},
			{Name: "English course cassettes", Desc: "Mama says this language is a ticket. The tape hisses with promise.", Stat: "mind", Mod: 1},
			{Name: "Keys on a shoelace", Desc: "Latchkey kid. The apartment is mine till eight in the evening.", Stat: "family", Mod: -1},
			{Name: "Asthma inhaler", Desc: "The city air and I have an arrangement.", Stat: "health", Mod: -1},
			{Name: "Metro pass", Desc: "The whole enormous city, one cardboard rectangle.", Stat: "friends", Mod: 1},
		},
		Boys: []models.StartItem{
			{Name: "Tetris brick", Desc: "Nine hundred ninety-nine games in one, allegedly.", Stat: "friends", Mod: 1},
		},
		Girls: []models.StartItem{
			{Name: "Barbie knockoff", Desc: "Polish-made, but nobody checks the label in our yard.", Stat: "looks", Mod: 1},
		},
	},
}
