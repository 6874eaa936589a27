package locale

var czech = table{
	unknown: "Neznámé",
	descriptions: map[int]string{
		0:  "Jasno",
		1:  "Převážně jasno",
		2:  "Polojasno",
		3:  "Zataženo",
		45: "Mlha",
		48: "Mlha s námrazou",
		51: "Slabé mrholení",
		53: "Mírné mrholení",
		55: "Husté mrholení",
		56: "Slabé mrznoucí mrholení",
		57: "Husté mrznoucí mrholení",
		61: "Slabý déšť",
		63: "Mírný déšť",
		65: "Silný déšť",
		66: "Slabý mrznoucí déšť",
		67: "Silný mrznoucí déšť",
		71: "Slabé sněžení",
		73: "Mírné sněžení",
		75: "Silné sněžení",
		77: "Sněhová zrna",
		80: "Slabé přeháňky",
		81: "Mírné přeháňky",
		82: "Prudké přeháňky",
		85: "Slabé sněhové přeháňky",
		86: "Silné sněhové přeháňky",
		95: "Bouřka",
		96: "Bouřka se slabým krupobitím",
		99: "Bouřka se silným krupobitím",
	},
}
