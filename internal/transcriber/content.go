package transcriber

// content хранит канонические тексты одного языка.
type content struct {
	transcript string
	summary    string
	chapters   string
}

// contentByLanguage — таблица демонстрационной лекции по классической механике.
// Транскрипты длиннее 500 символов, конспекты длиннее 200, чтобы выглядеть
// правдоподобно для клиентских приложений.
var contentByLanguage = map[string]content{
	"en": {
		transcript: `Welcome to today's Physics lecture on Newton's Laws of Motion. We will explore how objects behave when forces act upon them. Newton's Laws form the foundation of classical mechanics. The first law, often called the law of inertia, states that an object at rest stays at rest and an object in motion stays in motion at a constant velocity unless acted upon by an external force. The second law quantifies this relationship: the net force acting on a body equals its mass multiplied by its acceleration, F = ma. This simple equation lets us predict the motion of everything from falling apples to orbiting satellites. The third law tells us that for every action there is an equal and opposite reaction, which explains how rockets generate thrust and why we can walk without slipping. Throughout the semester we will apply these laws to friction, circular motion and oscillations, and you will see how a handful of principles describes an astonishing range of everyday phenomena.`,
		summary: `📚 **Lecture Summary: Newton's Laws of Motion**

**Key Concepts:**
- First law: inertia, objects resist changes to their state of motion
- Second law: the net force equals mass times acceleration, F = ma
- Third law: every action has an equal and opposite reaction

**Main Points:** The lecture presented the three laws as the foundation of classical Physics and showed how force and motion are connected through simple equations.

**Conclusion:** A few principles explain phenomena from falling apples to orbiting satellites.`,
		chapters: `📖 **Chapter 1: Introduction** — why Newton's Laws matter in Physics
📖 **Chapter 2: The Law of Inertia** — motion in the absence of external force
📖 **Chapter 3: F = ma** — quantifying force, mass and acceleration
📖 **Chapter 4: Action and Reaction** — paired forces in everyday motion
📖 **Chapter 5: Conclusion** — applying the laws to real problems`,
	},
	"it": {
		transcript: `Benvenuti alla lezione di Fisica di oggi dedicata alle Leggi di Newton sul moto. Esploreremo come si comportano i corpi quando una forza agisce su di essi. Le Leggi di Newton costituiscono il fondamento della meccanica classica. La prima legge, detta anche legge d'inerzia, afferma che un corpo in quiete rimane in quiete e un corpo in movimento continua il suo moto rettilineo uniforme finché una forza esterna non interviene. La seconda legge quantifica questa relazione: la forza risultante applicata a un corpo è uguale alla sua massa moltiplicata per l'accelerazione, F = ma. Questa semplice equazione permette di prevedere il movimento di ogni cosa, dalla caduta di una mela ai satelliti in orbita. La terza legge ci dice che a ogni azione corrisponde una reazione uguale e contraria, il che spiega la spinta dei razzi e il modo in cui camminiamo. Durante il semestre applicheremo queste leggi all'attrito, al moto circolare e alle oscillazioni.`,
		summary: `📚 **Riassunto della lezione: le Leggi di Newton sul moto**

**Concetti Chiave:**
- Prima legge: l'inerzia, i corpi resistono ai cambiamenti del loro stato di movimento
- Seconda legge: la forza risultante è uguale alla massa per l'accelerazione, F = ma
- Terza legge: a ogni azione corrisponde una reazione uguale e contraria

**Punti principali:** la lezione ha presentato le tre leggi come fondamento della Fisica classica, collegando forza e moto con equazioni semplici.

**Conclusione:** pochi principi spiegano fenomeni che vanno dalla caduta di una mela ai satelliti in orbita.`,
		chapters: `📖 **Capitolo 1: Introduzione** — perché le Leggi di Newton sono centrali nella Fisica
📖 **Capitolo 2: La legge d'inerzia** — il movimento in assenza di forza esterna
📖 **Capitolo 3: F = ma** — quantificare forza, massa e accelerazione
📖 **Capitolo 4: Azione e reazione** — coppie di forze nel moto quotidiano
📖 **Capitolo 5: Conclusione** — applicare le leggi a problemi reali`,
	},
	"es": {
		transcript: `Bienvenidos a la clase de Física de hoy dedicada a las Leyes de Newton del movimiento. Exploraremos cómo se comportan los cuerpos cuando una fuerza actúa sobre ellos. Las Leyes de Newton constituyen el fundamento de la mecánica clásica. La primera ley, llamada también ley de la inercia, establece que un cuerpo en reposo permanece en reposo y un cuerpo en movimiento mantiene su velocidad constante mientras ninguna fuerza externa intervenga. La segunda ley cuantifica esta relación: la fuerza neta aplicada a un cuerpo es igual a su masa multiplicada por su aceleración, F = ma. Esta sencilla ecuación permite predecir el movimiento de todo, desde la caída de una manzana hasta los satélites en órbita. La tercera ley nos dice que a toda acción corresponde una reacción igual y opuesta, lo que explica el empuje de los cohetes y la manera en que caminamos. Durante el semestre aplicaremos estas leyes a la fricción, al movimiento circular y a las oscilaciones.`,
		summary: `📚 **Resumen de la clase: las Leyes de Newton del movimiento**

**Conceptos Clave:**
- Primera ley: la inercia, los cuerpos se resisten a cambiar su estado de movimiento
- Segunda ley: la fuerza neta es igual a la masa por la aceleración, F = ma
- Tercera ley: a toda acción corresponde una reacción igual y opuesta

**Puntos principales:** la clase presentó las tres leyes como fundamento de la Física clásica, conectando fuerza y movimiento mediante ecuaciones sencillas.

**Conclusión:** unos pocos principios explican fenómenos que van desde la caída de una manzana hasta los satélites en órbita.`,
		chapters: `📖 **Capítulo 1: Introducción** — por qué las Leyes de Newton importan en la Física
📖 **Capítulo 2: La ley de la inercia** — el movimiento sin fuerza externa
📖 **Capítulo 3: F = ma** — cuantificar fuerza, masa y aceleración
📖 **Capítulo 4: Acción y reacción** — pares de fuerzas en el movimiento cotidiano
📖 **Capítulo 5: Conclusión** — aplicar las leyes a problemas reales`,
	},
	"fr": {
		transcript: `Bienvenue au cours de Physique d'aujourd'hui consacré aux Lois de Newton sur le mouvement. Nous allons explorer le comportement des corps lorsqu'une force agit sur eux. Les Lois de Newton constituent le fondement de la mécanique classique. La première loi, appelée aussi loi d'inertie, affirme qu'un corps au repos reste au repos et qu'un corps en mouvement conserve une vitesse constante tant qu'aucune force extérieure n'intervient. La deuxième loi quantifie cette relation : la force résultante appliquée à un corps est égale à sa masse multipliée par son accélération, F = ma. Cette équation simple permet de prédire le mouvement de toute chose, de la chute d'une pomme aux satellites en orbite. La troisième loi nous dit qu'à toute action correspond une réaction égale et opposée, ce qui explique la poussée des fusées et notre façon de marcher. Au cours du semestre, nous appliquerons ces lois au frottement, au mouvement circulaire et aux oscillations.`,
		summary: `📚 **Résumé du cours : les Lois de Newton sur le mouvement**

**Concepts Clés :**
- Première loi : l'inertie, les corps résistent aux changements de leur état de mouvement
- Deuxième loi : la force résultante est égale à la masse multipliée par l'accélération, F = ma
- Troisième loi : à toute action correspond une réaction égale et opposée

**Points principaux :** le cours a présenté les trois lois comme fondement de la Physique classique, reliant force et mouvement par des équations simples.

**Conclusion :** quelques principes expliquent des phénomènes allant de la chute d'une pomme aux satellites en orbite.`,
		chapters: `📖 **Chapitre 1 : Introduction** — pourquoi les Lois de Newton comptent en Physique
📖 **Chapitre 2 : La loi d'inertie** — le mouvement en l'absence de force extérieure
📖 **Chapitre 3 : F = ma** — quantifier force, masse et accélération
📖 **Chapitre 4 : Action et réaction** — les paires de forces du mouvement quotidien
📖 **Chapitre 5 : Conclusion** — appliquer les lois à des problèmes réels`,
	},
	"de": {
		transcript: `Willkommen zur heutigen Physik-Vorlesung über Newtons Gesetze der Bewegung. Wir untersuchen, wie sich Körper verhalten, wenn eine Kraft auf sie wirkt. Newtons Gesetze bilden das Fundament der klassischen Mechanik. Das erste Gesetz, auch Trägheitsgesetz genannt, besagt, dass ein ruhender Körper in Ruhe bleibt und ein bewegter Körper seine gleichförmige Bewegung beibehält, solange keine äußere Kraft eingreift. Das zweite Gesetz quantifiziert diesen Zusammenhang: die resultierende Kraft auf einen Körper ist gleich seiner Masse multipliziert mit seiner Beschleunigung, F = ma. Diese einfache Gleichung erlaubt es, die Bewegung von allem vorherzusagen, vom fallenden Apfel bis zum Satelliten im Orbit. Das dritte Gesetz sagt uns, dass jede Aktion eine gleich große, entgegengesetzte Reaktion hervorruft, was den Schub von Raketen und unser Gehen erklärt. Im Laufe des Semesters wenden wir diese Gesetze auf Reibung, Kreisbewegung und Schwingungen an.`,
		summary: `📚 **Zusammenfassung der Vorlesung: Newtons Gesetze der Bewegung**

**Schlüsselkonzepte:**
- Erstes Gesetz: die Trägheit, Körper widersetzen sich Änderungen ihres Bewegungszustands
- Zweites Gesetz: die resultierende Kraft ist gleich Masse mal Beschleunigung, F = ma
- Drittes Gesetz: jede Aktion erzeugt eine gleich große, entgegengesetzte Reaktion

**Hauptpunkte:** Die Vorlesung stellte die drei Gesetze als Fundament der klassischen Physik vor und verband Kraft und Bewegung durch einfache Gleichungen.

**Fazit:** Wenige Prinzipien erklären Phänomene vom fallenden Apfel bis zum Satelliten im Orbit.`,
		chapters: `📖 **Kapitel 1: Einführung** — warum Newtons Gesetze für die Physik zentral sind
📖 **Kapitel 2: Das Trägheitsgesetz** — Bewegung ohne äußere Kraft
📖 **Kapitel 3: F = ma** — Kraft, Masse und Beschleunigung quantifizieren
📖 **Kapitel 4: Aktion und Reaktion** — Kraftpaare in der alltäglichen Bewegung
📖 **Kapitel 5: Fazit** — die Gesetze auf reale Probleme anwenden`,
	},
}
